// Package placeholder fills stub templates with generated values.
package placeholder

import (
	"fmt"
	"strings"
)

// Tokens understood by the bundled stubs
const (
	UseStatementForRepository = "{{ use_statement_for_repository }}"
	UseStatementForContract   = "{{ use_statement_for_contract }}"
	UseStatementForUserModel  = "{{ use_statement_for_user_model }}"
	UseStatementForPolicy     = "{{ use_statement_for_policy }}"
	ImplementsContract        = "{{ implements_contract }}"
	RepositoriesNamespace     = "{{ repositories_namespace }}"
	ContractsNamespace        = "{{ contracts_namespace }}"
	PoliciesNamespace         = "{{ policies_namespace }}"
	ModelsNamespace           = "{{ models_namespace }}"
	BaseRepository            = "{{ base_repository }}"
	BaseContract              = "{{ base_contract }}"
	BasePolicy                = "{{ base_policy }}"
	Repository                = "{{ repository }}"
	Contract                  = "{{ contract }}"
	Policy                    = "{{ policy }}"
	Model                     = "{{ model }}"
	ModelVariable             = "{{ modelVariable }}"
	User                      = "{{ user }}"
)

// Pair is one token and the value that replaces it
type Pair struct {
	Token string
	Value string
}

// Set is an ordered list of replacements for one artifact
type Set []Pair

// Add appends a replacement
func (s *Set) Add(token, value string) {
	*s = append(*s, Pair{Token: token, Value: value})
}

// Value returns the value bound to token
func (s Set) Value(token string) (string, bool) {
	for _, p := range s {
		if p.Token == token {
			return p.Value, true
		}
	}
	return "", false
}

// Apply substitutes every pair of s into template
func (s Set) Apply(template string) string {
	out := template
	for _, p := range s {
		out = replace(out, p.Token, p.Value)
	}
	return out
}

// Substitute replaces every occurrence of tokens[i] with values[i], one token
// at a time in order. Matching is literal. A value may therefore contain a
// later token, which then gets replaced too.
func Substitute(template string, tokens, values []string) (string, error) {
	if len(tokens) != len(values) {
		return "", fmt.Errorf("placeholder count mismatch: %d tokens, %d values", len(tokens), len(values))
	}

	out := template
	for i, token := range tokens {
		out = replace(out, token, values[i])
	}
	return out, nil
}

func replace(text, token, value string) string {
	if token == "" {
		return text
	}
	return strings.ReplaceAll(text, token, value)
}

// Missing returns the tokens of the form "{{ name }}" still present in text
func Missing(text string) []string {
	var found []string
	seen := make(map[string]bool)
	for {
		start := strings.Index(text, "{{ ")
		if start < 0 {
			break
		}
		end := strings.Index(text[start:], " }}")
		if end < 0 {
			break
		}
		token := text[start : start+end+3]
		if !seen[token] {
			seen[token] = true
			found = append(found, token)
		}
		text = text[start+end+3:]
	}
	return found
}
