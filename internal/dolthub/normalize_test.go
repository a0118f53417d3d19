// Copyright 2025 SirSeer, LLC
//
// Licensed under the Business Source License 1.1 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://mariadb.com/bsl11
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package dolthub

import (
	"encoding/json"
	"testing"
)

func TestFlexInt(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{`42`, 42},
		{`"42"`, 42},
		{`" 42 "`, 42},
		{`null`, 0},
		{`0`, 0},
	}

	for _, tt := range tests {
		var got flexInt
		if err := json.Unmarshal([]byte(tt.input), &got); err != nil {
			t.Errorf("unmarshal %s: %v", tt.input, err)
			continue
		}
		if int(got) != tt.want {
			t.Errorf("flexInt(%s) = %d, want %d", tt.input, got, tt.want)
		}
	}
}

func TestFlexInt_RejectsNonNumericString(t *testing.T) {
	var got flexInt
	if err := json.Unmarshal([]byte(`"forty-two"`), &got); err == nil {
		t.Error("expected error for non-numeric string")
	}
}

func TestTruthyBool(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{`true`, true},
		{`false`, false},
		{`1`, true},
		{`0`, false},
		{`"1"`, true},
		{`"0"`, false},
		{`"true"`, true},
		{`"false"`, false},
		{`"False"`, false},
		{`""`, false},
		{`"yes"`, true},
		{`null`, false},
	}

	for _, tt := range tests {
		var got truthyBool
		if err := json.Unmarshal([]byte(tt.input), &got); err != nil {
			t.Errorf("unmarshal %s: %v", tt.input, err)
			continue
		}
		if bool(got) != tt.want {
			t.Errorf("truthyBool(%s) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestZipRow(t *testing.T) {
	columns := []rawColumn{{Name: "id"}, {Name: "name"}}

	t.Run("nil row stays nil", func(t *testing.T) {
		if got := zipRow(columns, nil); got != nil {
			t.Errorf("zipRow(nil) = %v", got)
		}
	})

	t.Run("extra values beyond the column list are dropped", func(t *testing.T) {
		row := &rawRow{ColumnValues: []rawColumnValue{
			{DisplayValue: "1"}, {DisplayValue: "Soup"}, {DisplayValue: "stray"},
		}}
		got := zipRow(columns, row)
		if len(got) != 2 || got["id"] != "1" || got["name"] != "Soup" {
			t.Errorf("zipRow = %v", got)
		}
	})

	t.Run("empty value list maps to nil", func(t *testing.T) {
		if got := zipRow(columns, &rawRow{}); got != nil {
			t.Errorf("zipRow = %v, want nil", got)
		}
	})
}

func TestRawTableDiff_TableName(t *testing.T) {
	tests := []struct {
		name string
		diff rawTableDiff
		want string
	}{
		{"new table wins", rawTableDiff{OldTable: &rawTable{TableName: "old"}, NewTable: &rawTable{TableName: "new"}}, "new"},
		{"dropped table falls back to old", rawTableDiff{OldTable: &rawTable{TableName: "old"}}, "old"},
		{"empty new name falls back to old", rawTableDiff{OldTable: &rawTable{TableName: "old"}, NewTable: &rawTable{}}, "old"},
		{"both absent", rawTableDiff{}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.diff.tableName(); got != tt.want {
				t.Errorf("tableName() = %q, want %q", got, tt.want)
			}
		})
	}
}
