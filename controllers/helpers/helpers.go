package helpers

import "github.com/gookit/validate"

type Error struct {
	Error string `json:"error"`
}

type Errors struct {
	Errors []string `json:"errors"`
}

func (e Errors) Size() int {
	return len(e.Errors)
}

// First returns the earliest recorded error.
func (e Errors) First() string {
	if e.Size() == 0 {
		return ""
	}

	return e.Errors[0]
}

type FieldRule struct {
	Field   string
	Rule    string
	Message string
}

// Validate checks payload against rules and records one message per failing field,
// following the order of rules rather than the order gookit reports them in.
func Validate(payload map[string]interface{}, rules []FieldRule, validators map[string]interface{}, err_src *Errors) {
	v := validate.Map(payload)
	v.StopOnError = false

	for name, fn := range validators {
		v.AddValidator(name, fn)
	}

	for _, rule := range rules {
		v.StringRule(rule.Field, rule.Rule)
	}

	if v.Validate() {
		return
	}

	for _, rule := range rules {
		if _, failed := v.Errors[rule.Field]; failed {
			err_src.Errors = append(err_src.Errors, rule.Message)
		}
	}
}
