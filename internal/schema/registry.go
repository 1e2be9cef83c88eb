package schema

import (
	_ "embed"
	"fmt"
	"slices"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/heartmarshall/coach-admin/internal/domain"
)

// Names of the built-in schemas.
const (
	Login             = "login"
	Register          = "register"
	User              = "user"
	Gym               = "gym"
	GymUser           = "gym_user"
	DietPlan          = "diet_plan"
	DietPlanDuplicate = "diet_plan_duplicate"
	MealPlan          = "meal_plan"
	ClientProfile     = "client_profile"
)

//go:embed schemas.yaml
var builtinYAML []byte

// Registry holds schemas by name.
type Registry struct {
	schemas map[string]*Schema
}

type document struct {
	Schemas []definition `yaml:"schemas"`
}

type definition struct {
	Name   string            `yaml:"name"`
	Entity domain.EntityType `yaml:"entity"`
	Fields []Field           `yaml:"fields"`
	Rules  []Rule            `yaml:"rules"`
}

// Parse builds a registry from a YAML document.
func Parse(data []byte) (*Registry, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("schema: parse: %w", err)
	}

	r := &Registry{schemas: make(map[string]*Schema, len(doc.Schemas))}
	for _, def := range doc.Schemas {
		if !def.Entity.IsValid() {
			return nil, fmt.Errorf("schema %s: unknown entity %q", def.Name, def.Entity)
		}
		if _, dup := r.schemas[def.Name]; dup {
			return nil, fmt.Errorf("schema %s: defined twice", def.Name)
		}
		s, err := New(def.Name, def.Entity, def.Fields, def.Rules...)
		if err != nil {
			return nil, err
		}
		r.schemas[def.Name] = s
	}
	return r, nil
}

var builtin = sync.OnceValues(func() (*Registry, error) {
	return Parse(builtinYAML)
})

// Builtin returns the registry of the embedded form definitions.
func Builtin() (*Registry, error) {
	return builtin()
}

// MustBuiltin is like Builtin but panics if the embedded document is broken.
func MustBuiltin() *Registry {
	r, err := builtin()
	if err != nil {
		panic(err)
	}
	return r
}

// Get returns the schema registered under name.
func (r *Registry) Get(name string) (*Schema, error) {
	s, ok := r.schemas[name]
	if !ok {
		return nil, fmt.Errorf("schema %q: %w", name, domain.ErrNotFound)
	}
	return s, nil
}

// Must is like Get but panics on an unknown name.
func (r *Registry) Must(name string) *Schema {
	s, err := r.Get(name)
	if err != nil {
		panic(err)
	}
	return s
}

// Names returns the registered schema names, sorted.
func (r *Registry) Names() []string {
	out := make([]string, 0, len(r.schemas))
	for name := range r.schemas {
		out = append(out, name)
	}
	slices.Sort(out)
	return out
}
