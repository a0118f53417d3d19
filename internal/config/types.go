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

package config

// Config is the root configuration structure.
type Config struct {
	// DoltHub holds endpoint settings.
	DoltHub DoltHubConfig `yaml:"dolthub"`

	// Credential holds how the dolthubToken cookie value is sourced.
	Credential CredentialConfig `yaml:"credential"`
}

// DoltHubConfig holds endpoint settings.
type DoltHubConfig struct {
	// GraphQLEndpoint is the GraphQL API endpoint URL.
	GraphQLEndpoint string `yaml:"graphql_endpoint"`
}

// CredentialConfig holds credential sourcing settings. Exactly one source
// must resolve at runtime: a token (flag or environment) or a token file.
type CredentialConfig struct {
	// TokenFile is the path of a file whose first line is the
	// dolthubToken cookie value.
	TokenFile string `yaml:"token_file"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		DoltHub: DoltHubConfig{
			GraphQLEndpoint: "https://www.dolthub.com/graphql",
		},
	}
}
