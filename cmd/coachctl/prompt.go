package main

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"

	"github.com/heartmarshall/coach-admin/internal/controller"
	"github.com/heartmarshall/coach-admin/internal/schema"
)

var errAborted = errors.New("aborted")

// prompter abstracts the terminal so form flows can be tested with a
// scripted implementation.
type prompter interface {
	Input(msg, def string) (string, error)
	Password(msg string) (string, error)
	Confirm(msg string, def bool) (bool, error)
	Select(msg string, options []string, def string) (string, error)
	MultiSelect(msg string, options, defs []string) ([]string, error)
}

type surveyPrompter struct{}

func (surveyPrompter) Input(msg, def string) (string, error) {
	var out string
	err := survey.AskOne(&survey.Input{Message: msg, Default: def}, &out)
	return out, translateSurveyErr(err)
}

func (surveyPrompter) Password(msg string) (string, error) {
	var out string
	err := survey.AskOne(&survey.Password{Message: msg}, &out)
	return out, translateSurveyErr(err)
}

func (surveyPrompter) Confirm(msg string, def bool) (bool, error) {
	var out bool
	err := survey.AskOne(&survey.Confirm{Message: msg, Default: def}, &out)
	return out, translateSurveyErr(err)
}

func (surveyPrompter) Select(msg string, options []string, def string) (string, error) {
	var out string
	prompt := &survey.Select{Message: msg, Options: options}
	if slices.Contains(options, def) {
		prompt.Default = def
	}
	err := survey.AskOne(prompt, &out)
	return out, translateSurveyErr(err)
}

func (surveyPrompter) MultiSelect(msg string, options, defs []string) ([]string, error) {
	var out []string
	prompt := &survey.MultiSelect{Message: msg, Options: options, PageSize: 12}
	if len(defs) > 0 {
		prompt.Default = defs
	}
	err := survey.AskOne(prompt, &out)
	return out, translateSurveyErr(err)
}

func translateSurveyErr(err error) error {
	if errors.Is(err, terminal.InterruptErr) {
		return errAborted
	}
	return err
}

// confirmer turns p into the delete confirmation used by controllers.
// yes skips the question.
func confirmer(p prompter, yes bool) controller.Confirmer {
	if yes {
		return controller.AlwaysConfirm
	}
	return controller.ConfirmFunc(func(ctx context.Context, prompt string) (bool, error) {
		if err := ctx.Err(); err != nil {
			return false, err
		}
		return p.Confirm(prompt, false)
	})
}

// fill asks for every field of s in order, offering the current draft
// values as defaults, and returns the edited copy.
func fill(ctx context.Context, p prompter, s *schema.Schema, draft schema.Values) (schema.Values, error) {
	out := draft.Clone()
	if out == nil {
		out = schema.Values{}
	}
	for _, f := range s.Fields() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		v, err := ask(p, f, out[f.Name])
		if err != nil {
			return nil, fmt.Errorf("%s: %w", f.Name, err)
		}
		if schema.IsEmpty(v) && schema.IsEmpty(out[f.Name]) {
			continue
		}
		out[f.Name] = v
	}
	return out, nil
}

func ask(p prompter, f schema.Field, cur any) (any, error) {
	label := f.DisplayLabel()
	if f.Unit != "" {
		label += " (" + f.Unit + ")"
	}

	switch f.Kind {
	case schema.KindEnum:
		def, _ := schema.AsString(cur)
		return p.Select(label, f.Enum, def)

	case schema.KindStringArray:
		prev, _ := schema.AsStrings(cur)
		if len(f.Enum) == 0 {
			s, err := p.Input(label+", comma separated", strings.Join(prev, ", "))
			if err != nil {
				return nil, err
			}
			list, _ := schema.AsStrings(s)
			return list, nil
		}
		picked, err := p.MultiSelect(label, f.Enum, prev)
		if err != nil {
			return nil, err
		}
		return applySelection(prev, picked, f.Exclusive), nil

	case schema.KindNumber:
		def := ""
		if n, ok := schema.AsNumber(cur); ok {
			def = strconv.FormatFloat(n, 'f', -1, 64)
		}
		s, err := p.Input(label, def)
		if err != nil {
			return nil, err
		}
		if n, ok := schema.AsNumber(s); ok {
			return n, nil
		}
		return s, nil

	case schema.KindDate:
		def, _ := schema.AsString(cur)
		return p.Input(label+" (YYYY-MM-DD)", def)
	}

	if f.Secret {
		return p.Password(label)
	}
	def, _ := schema.AsString(cur)
	return p.Input(label, def)
}

// applySelection replays a multi-select result as individual toggles so the
// exclusive option behaves like it does on a checklist: picking it alone
// clears the rest, and picking anything else drops it.
func applySelection(prev, picked []string, exclusive string) []string {
	out := slices.Clone(prev)
	for _, v := range prev {
		if !slices.Contains(picked, v) {
			out = schema.ToggleOption(out, v, false, exclusive)
		}
	}
	added := make([]string, 0, len(picked))
	for _, v := range picked {
		if !slices.Contains(prev, v) {
			added = append(added, v)
		}
	}
	// A freshly picked exclusive option wins only when it is the sole addition.
	for _, v := range added {
		if v == exclusive && len(added) > 1 {
			continue
		}
		out = schema.ToggleOption(out, v, true, exclusive)
	}
	if out == nil {
		out = []string{}
	}
	return out
}
