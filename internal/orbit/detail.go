package orbit

import "fmt"

// Detail is the content of the overlay shown for a focused item.
type Detail struct {
	ID          string
	Name        string
	Label       string
	Color       string
	Description string
	Tags        []string
}

var descriptions = map[string]string{
	"react":      "Component-driven interfaces with hooks, suspense and a careful eye on render cost.",
	"postgresql": "Schemas, migrations and query plans for data that has to stay correct.",
	"typescript": "Typed contracts across the front end so refactors stay boring.",
	"git":        "Small commits, clean history and review-friendly branches.",
}

var detailTags = []string{"Proficient", "Production", "3+ Years"}

// DetailFor builds the overlay content for it. Items without a dedicated
// description get a generic one naming the item.
func DetailFor(it Item) Detail {
	desc, ok := descriptions[it.ID]
	if !ok {
		desc = fmt.Sprintf("An integral part of my development ecosystem. I leverage %s to build scalable, high-performance applications with modern best practices.", it.Name)
	}
	tags := make([]string, len(detailTags))
	copy(tags, detailTags)
	return Detail{
		ID:          it.ID,
		Name:        it.Name,
		Label:       it.Label,
		Color:       it.Color,
		Description: desc,
		Tags:        tags,
	}
}
