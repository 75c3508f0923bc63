// Copyright (c) 2026 Ponydex. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package collection

// Role is a role of a category with the skills a pony needs to hold it.
type Role struct {
	Name           string   `json:"name"`
	RequiredSkills []string `json:"required_skills"`
}

// Category groups roles.
type Category struct {
	Name  string `json:"name"`
	Roles []Role `json:"roles"`
}

// Attributes lists the selectable values of a pony.
type Attributes struct {
	Kinds         []string   `json:"kinds"`
	Personalities []string   `json:"personalities"`
	Skills        []string   `json:"skills"`
	Categories    []Category `json:"categories"`
}

// Some team roles list personality traits ("Creative", "Clever") as required
// skills. No skill carries those names, so such roles are only reachable when
// the client sends them as skills.
var attributes = Attributes{
	Kinds: []string{
		"Unicorn", "Pegasus", "Alicorn", "Seapony", "Dragon",
		"Griffon", "Changeling", "Yak", "Hippogriff", "Siren",
	},
	Personalities: []string{"Friendly", "Brave", "Clever", "Energetic", "Shy", "Creative"},
	Skills:        []string{"Magic", "Flying", "Athletics", "Art", "Music", "Leadership"},
	Categories: []Category{
		{
			Name: "Fighter Class",
			Roles: []Role{
				{Name: "Warrior", RequiredSkills: []string{"Athletics"}},
				{Name: "Mage", RequiredSkills: []string{"Magic"}},
				{Name: "Rogue", RequiredSkills: []string{"Athletics"}},
				{Name: "Cleric", RequiredSkills: []string{"Magic"}},
				{Name: "Bard", RequiredSkills: []string{"Music"}},
				{Name: "Ranger", RequiredSkills: []string{"Athletics", "Flying"}},
				{Name: "Druid", RequiredSkills: []string{"Magic", "Athletics"}},
				{Name: "Paladin", RequiredSkills: []string{"Leadership", "Athletics"}},
			},
		},
		{
			Name: "Team Role",
			Roles: []Role{
				{Name: "Project Manager", RequiredSkills: []string{"Leadership"}},
				{Name: "Product Owner", RequiredSkills: []string{}},
				{Name: "Developer", RequiredSkills: []string{"Magic"}},
				{Name: "Designer", RequiredSkills: []string{"Art"}},
				{Name: "QA Engineer", RequiredSkills: []string{"Athletics"}},
				{Name: "Software Engineer", RequiredSkills: []string{"Magic", "Athletics"}},
				{Name: "Scrum Master", RequiredSkills: []string{"Leadership", "Athletics"}},
				{Name: "DevOps Engineer", RequiredSkills: []string{"Magic", "Athletics"}},
				{Name: "UX Designer", RequiredSkills: []string{"Art", "Creative"}},
				{Name: "Data Scientist", RequiredSkills: []string{"Magic", "Clever"}},
				{Name: "Data Analyst", RequiredSkills: []string{"Clever"}},
				{Name: "Technical Writer", RequiredSkills: []string{"Creative"}},
				{Name: "Content Writer", RequiredSkills: []string{"Creative"}},
			},
		},
	},
}

// findRole looks up a role within a category.
func findRole(category, role string) (*Category, *Role) {
	for i := range attributes.Categories {
		c := &attributes.Categories[i]
		if c.Name != category {
			continue
		}
		for j := range c.Roles {
			if c.Roles[j].Name == role {
				return c, &c.Roles[j]
			}
		}
		return c, nil
	}
	return nil, nil
}
