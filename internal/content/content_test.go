package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadEmbedded(t *testing.T) {
	site, err := Load()
	require.NoError(t, err)

	assert.NotEmpty(t, site.Profile.Name)
	assert.NotEmpty(t, site.SEO.Title)
	assert.Len(t, site.Nav, 6)
	assert.Equal(t, "#home", site.Nav[0].Href)
	assert.Len(t, site.ExperienceOf(Work), 2)
	assert.Len(t, site.ExperienceOf(Education), 2)
	assert.Len(t, site.Featured(), 3)
}

func TestShowcasePutsFeaturedFirst(t *testing.T) {
	site, err := Parse([]byte(`
projects:
  - {id: a}
  - {id: b, featured: true}
  - {id: c}
  - {id: d, featured: true}
`))
	require.NoError(t, err)

	var ids []string
	for _, p := range site.Showcase() {
		ids = append(ids, p.ID)
	}
	assert.Equal(t, []string{"b", "d", "a", "c"}, ids)
}

func TestSkillGroupsFollowCategoryOrder(t *testing.T) {
	site, err := Load()
	require.NoError(t, err)

	groups := site.SkillGroups()
	var ids []string
	total := 0
	for _, g := range groups {
		ids = append(ids, g.ID)
		total += len(g.Skills)
		for _, sk := range g.Skills {
			assert.Equal(t, g.ID, sk.Category)
		}
	}
	assert.Equal(t, []string{"frontend", "backend", "database", "tools"}, ids)
	assert.Equal(t, len(site.Skills), total)
}

func TestProjectLookup(t *testing.T) {
	site, err := Load()
	require.NoError(t, err)

	p, err := site.Project("portfolio")
	require.NoError(t, err)
	assert.Contains(t, p.Tech, "Gin")

	_, err = site.Project("nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestParseRejectsBadReferences(t *testing.T) {
	_, err := Parse([]byte(`
skill_categories: [{id: tools, label: Tools}]
skills: [{name: Vim, category: editors}]
`))
	assert.ErrorContains(t, err, "unknown category")

	_, err = Parse([]byte(`experience: [{id: x, type: hobby}]`))
	assert.ErrorContains(t, err, "unknown type")

	_, err = Parse([]byte(`projects: [{id: a}, {id: a}]`))
	assert.ErrorContains(t, err, "duplicate")

	_, err = Parse([]byte(`nav: {`))
	assert.Error(t, err)
}

func TestEmptyCategoriesDropped(t *testing.T) {
	site, err := Parse([]byte(`
skill_categories: [{id: a, label: A}, {id: b, label: B}]
skills: [{name: X, category: b}]
`))
	require.NoError(t, err)
	groups := site.SkillGroups()
	require.Len(t, groups, 1)
	assert.Equal(t, "b", groups[0].ID)
}
