package scene

import (
	"slices"

	"github.com/oliverbestmann/tumble/color"
	"github.com/oliverbestmann/tumble/gm"
	"github.com/oliverbestmann/tumble/physics"
)

type definition struct {
	name        string
	description string

	build func(s *Scene, rng *gm.Random)

	// gravity of the world, zero selects the default
	gravity gm.Vec

	ceiling    bool
	stiffness  float64
	background color.Color
}

var definitions = []definition{
	{
		name:        "landing",
		description: "gradient circles, a half circle and two arches",
		build:       buildLanding,
		ceiling:     true,
		stiffness:   physics.DefaultStiffness,
		background:  color.White,
	},
	{
		name:        "labels",
		description: "dot, banner, burst, pill, parallelogram, vertical label, quarter pie and ring",
		build:       buildLabels,
		ceiling:     true,
		stiffness:   physics.DefaultStiffness,
		background:  color.White,
	},
	{
		name:        "party",
		description: "star, eye, martini glass, olive stick, camera, exclamation mark, cloud and friends",
		build:       buildParty,
		ceiling:     true,
		stiffness:   physics.DefaultStiffness,
		background:  color.MustParse("#F9FAFB"),
	},
	{
		name:        "bagels",
		description: "bagels with curved text and a ribbon",
		build:       buildBagels,
		ceiling:     true,
		stiffness:   physics.DefaultStiffness,
		background:  color.White,
	},
	{
		name:        "about",
		description: "text badges dropping in from above",
		build:       buildAbout,
		gravity:     physics.DefaultGravity.Mul(0.5),
		ceiling:     false,
		stiffness:   0.25,
		background:  color.White,
	},
}

// Names returns the names of all scenes in catalogue order.
func Names() []string {
	var names []string
	for _, def := range definitions {
		names = append(names, def.name)
	}

	return names
}

// Describe returns a one line description of the scene.
func Describe(name string) (string, bool) {
	def, ok := lookupDefinition(name)
	return def.description, ok
}

func lookupDefinition(name string) (definition, bool) {
	idx := slices.IndexFunc(definitions, func(def definition) bool { return def.name == name })
	if idx < 0 {
		return definition{}, false
	}

	return definitions[idx], true
}
