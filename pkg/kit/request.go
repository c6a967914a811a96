package kit

import (
	"slices"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/macropower/sdkconf/internal/validation"
	"github.com/macropower/sdkconf/pkg/settings"
)

// MaxGeneratorParts is the number of colon separated parts of a CMake
// generator description: GENERATOR:EXTRA:TOOLSET:PLATFORM.
const MaxGeneratorParts = 4

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validation.New()

	err := v.RegisterValidation("cmakegenerator", func(fl validator.FieldLevel) bool {
		return len(strings.Split(fl.Field().String(), ":")) <= MaxGeneratorParts
	})
	if err != nil {
		panic(err)
	}

	v.RegisterStructValidation(validateDebugger, Request{})

	return v
}

// Request describes a kit to add. Optional string fields left nil are not
// written. Qt is a tri-state: nil selects nothing, a pointer to "" selects
// "no Qt" explicitly, and any other value names a Qt version.
type Request struct {
	Icon           *string             `flag:"icon"`
	DebuggerID     *string             `flag:"debuggerid"`
	DebuggerBinary *string             `flag:"debugger"`
	Device         *string             `flag:"device"`
	SysRoot        *string             `flag:"sysroot"`
	Qt             *string             `flag:"qt"`
	Mkspec         *string             `flag:"mkspec"`
	CMakeTool      *string             `flag:"cmake"`
	CMakeGenerator *string             `flag:"cmake-generator" validate:"omitempty,cmakegenerator"`
	ToolChains     map[string]string   `flag:"toolchain"       validate:"dive,keys,required,endkeys,required"`
	ID             string              `flag:"id"              validate:"required"`
	DisplayName    string              `flag:"name"            validate:"required"`
	DeviceType     string              `flag:"devicetype"      validate:"required"`
	CMakeConfig    []string            `flag:"cmake-config"`
	Env            []string            `flag:"env"`
	Extra          []settings.KeyValue `flag:"-"`
	DebuggerEngine int                 `flag:"debuggerengine"  validate:"min=0"`
}

// Validate checks the shape of the request without consulting any
// collection: required fields, the debugger selection and the CMake
// generator description.
func (r Request) Validate() error {
	return validation.Struct(validate, r)
}

// Languages returns the toolchain languages of the request in sorted order.
func (r Request) Languages() []string {
	langs := make([]string, 0, len(r.ToolChains))
	for lang := range r.ToolChains {
		langs = append(langs, lang)
	}

	slices.Sort(langs)

	return langs
}

// A debugger is selected either by id or by binary and engine, not both.
func validateDebugger(sl validator.StructLevel) {
	r, ok := sl.Current().Interface().(Request)
	if !ok {
		return
	}

	if deref(r.DebuggerID) == "" {
		return
	}

	if deref(r.DebuggerBinary) != "" || r.DebuggerEngine != 0 {
		sl.ReportError(r.DebuggerID, "--debuggerid", "DebuggerID", "excluded_with", "--debugger/--debuggerengine")
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}

	return *s
}

// Generator is a parsed CMake generator description. Parts that were not
// given are nil.
type Generator struct {
	Extra    *string
	Toolset  *string
	Platform *string
	Name     string
}

// ParseGenerator splits a GENERATOR:EXTRA:TOOLSET:PLATFORM description.
// It returns false if s has more than [MaxGeneratorParts] parts.
func ParseGenerator(s string) (Generator, bool) {
	parts := strings.Split(s, ":")
	if len(parts) > MaxGeneratorParts {
		return Generator{}, false
	}

	g := Generator{Name: parts[0]}

	optional := []**string{&g.Extra, &g.Toolset, &g.Platform}
	for i, part := range parts[1:] {
		*optional[i] = &part
	}

	return g, true
}

// Tree returns the generator as stored in a kit.
func (g Generator) Tree() settings.Tree {
	t := settings.Tree{"Generator": settings.String(g.Name)}

	if g.Extra != nil {
		t["ExtraGenerator"] = settings.String(*g.Extra)
	}

	if g.Toolset != nil {
		t["Toolset"] = settings.String(*g.Toolset)
	}

	if g.Platform != nil {
		t["Platform"] = settings.String(*g.Platform)
	}

	return t
}
