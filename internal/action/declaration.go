// SPDX-License-Identifier: MPL-2.0

package action

// Configuration defaults.
const (
	ConfigurationRelease = "Release"
	ConfigurationDebug   = "Debug"

	// DefaultProject is the project path used when none is given.
	DefaultProject = "."
)

// Declaration is the ordered input list of one action kind.
type Declaration struct {
	Kind        Kind
	Description string
	Inputs      []InputSpec
}

// Shared input declarations. Each action picks the ones it accepts.
var (
	configurationInput = InputSpec{
		Name:        InputConfiguration,
		Description: "Build configuration. Defaults to Release under CI and Debug otherwise.",
		Policy:      CIConditional(ConfigurationRelease, ConfigurationDebug),
	}
	projectInput = InputSpec{
		Name:        InputProject,
		Description: "Project or solution file, or a directory containing one.",
		Policy:      Literal(DefaultProject),
	}
	noRestoreInput = InputSpec{
		Name:        InputNoRestore,
		Description: `Skip the implicit restore. Defaults to "true" under CI; set "false" to force a restore.`,
		Policy:      DependentBool(BoolOnInCI),
	}
	noBuildInput = InputSpec{
		Name:        InputNoBuild,
		Description: `Skip the implicit build when set to "true".`,
		Policy:      DependentBool(BoolOff),
	}
	outputInput = InputSpec{
		Name:        InputOutput,
		Description: "Output directory. Omitted when empty.",
		Policy:      Literal(""),
	}
	runtimeInput = InputSpec{
		Name:        InputRuntime,
		Description: "Target runtime identifier, e.g. linux-x64. Omitted when empty.",
		Policy:      Literal(""),
	}
	filterInput = InputSpec{
		Name:        InputFilter,
		Description: "Test filter expression, e.g. Category=Unit. Omitted when empty.",
		Policy:      Literal(""),
	}
	loggerInput = InputSpec{
		Name:        InputLogger,
		Description: "Test logger specification, e.g. trx. Omitted when empty.",
		Policy:      Literal(""),
	}
)

var declarations = map[Kind]Declaration{
	KindBuild: {
		Kind:        KindBuild,
		Description: "Build a .NET project with dotnet build.",
		Inputs:      []InputSpec{configurationInput, projectInput, noRestoreInput},
	},
	KindClean: {
		Kind:        KindClean,
		Description: "Clean the outputs of a .NET project with dotnet clean.",
		Inputs:      []InputSpec{configurationInput, projectInput, outputInput},
	},
	KindPublish: {
		Kind:        KindPublish,
		Description: "Publish a .NET project with dotnet publish.",
		Inputs:      []InputSpec{configurationInput, projectInput, noRestoreInput, noBuildInput, outputInput, runtimeInput},
	},
	KindTest: {
		Kind:        KindTest,
		Description: "Run .NET tests with dotnet test.",
		Inputs:      []InputSpec{configurationInput, projectInput, noRestoreInput, noBuildInput, filterInput, loggerInput},
	},
	KindPack: {
		Kind:        KindPack,
		Description: "Create NuGet packages with dotnet pack.",
		Inputs:      []InputSpec{configurationInput, projectInput, noRestoreInput, noBuildInput, outputInput},
	},
}

// Lookup returns the declaration for kind.
func Lookup(kind Kind) (Declaration, error) {
	d, ok := declarations[kind]
	if !ok {
		return Declaration{}, &InvalidKindError{Value: kind}
	}
	return d, nil
}

// Declares reports whether the declaration accepts the named input.
func (d Declaration) Declares(name InputName) bool {
	_, ok := d.Input(name)
	return ok
}

// Input returns the InputSpec of the named input.
func (d Declaration) Input(name InputName) (InputSpec, bool) {
	for _, in := range d.Inputs {
		if in.Name == name {
			return in, true
		}
	}
	return InputSpec{}, false
}
