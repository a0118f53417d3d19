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
	"fmt"
	"os"
	"strings"

	dperrors "github.com/doltpr/doltpr/internal/errors"
)

// TokenFromFile reads the dolthubToken cookie value from path. Only the
// first line is used, trimmed of surrounding whitespace. A missing or
// empty file is a configuration error; no call proceeds without a token.
func TokenFromFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("credential file %s: %w", path, dperrors.ErrNoCredential)
	}

	line, _, _ := strings.Cut(string(data), "\n")
	token := strings.TrimSpace(line)
	if token == "" {
		return "", fmt.Errorf("credential file %s is empty: %w", path, dperrors.ErrNoCredential)
	}

	return token, nil
}
