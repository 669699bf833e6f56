package cli

import (
	"context"
	"fmt"
	"strings"
)

type candidate struct {
	id   string
	name string
}

// resolveID matches input against candidates by exact ID, then
// case-insensitive name, then ID prefix.
func resolveID(kind, input string, all []candidate) (string, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return "", fmt.Errorf("%s ID is required", kind)
	}

	for _, c := range all {
		if c.id == input {
			return c.id, nil
		}
	}

	var byName []string
	for _, c := range all {
		if c.name != "" && strings.EqualFold(c.name, input) {
			byName = append(byName, c.id)
		}
	}
	if len(byName) == 1 {
		return byName[0], nil
	}
	if len(byName) > 1 {
		return "", fmt.Errorf("%s name %q is ambiguous (%d matches)", kind, input, len(byName))
	}

	var matches []string
	for _, c := range all {
		if strings.HasPrefix(c.id, input) {
			matches = append(matches, c.id)
		}
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("%s not found: %q", kind, input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("%s ID prefix %q is ambiguous (%d matches)", kind, input, len(matches))
	}
}

func resolveProjectID(ctx context.Context, app *App, input string) (string, error) {
	projects, err := app.Projects.List(ctx, true)
	if err != nil {
		return "", err
	}
	all := make([]candidate, 0, len(projects))
	for _, p := range projects {
		all = append(all, candidate{id: p.ID, name: p.Name})
	}
	return resolveID("project", input, all)
}

func resolveTeamID(ctx context.Context, app *App, input string) (string, error) {
	teams, err := app.Teams.List(ctx)
	if err != nil {
		return "", err
	}
	all := make([]candidate, 0, len(teams))
	for _, t := range teams {
		all = append(all, candidate{id: t.ID, name: t.Name})
	}
	return resolveID("team", input, all)
}

func resolveVisitID(ctx context.Context, app *App, input string) (string, error) {
	visits, err := app.Visits.ListAll(ctx)
	if err != nil {
		return "", err
	}
	all := make([]candidate, 0, len(visits))
	for _, v := range visits {
		all = append(all, candidate{id: v.ID})
	}
	return resolveID("visit", input, all)
}

func projectNames(ctx context.Context, app *App) (map[string]string, error) {
	projects, err := app.Projects.List(ctx, true)
	if err != nil {
		return nil, err
	}
	names := make(map[string]string, len(projects))
	for _, p := range projects {
		names[p.ID] = p.Name
	}
	return names, nil
}

func teamNames(ctx context.Context, app *App) (map[string]string, error) {
	teams, err := app.Teams.List(ctx)
	if err != nil {
		return nil, err
	}
	names := make(map[string]string, len(teams))
	for _, t := range teams {
		names[t.ID] = t.Name
	}
	return names, nil
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
