package manifest

import (
	"encoding/json"
	"errors"
)

// packageJSON is the subset of package.json that bakehouse reads.
type packageJSON struct {
	Name            *string           `json:"name"`
	Version         *string           `json:"version"`
	Dependencies    map[string]string `json:"dependencies"`
	DevDependencies map[string]string `json:"devDependencies"`
	Engines         *enginesDTO       `json:"engines"`
	Workspaces      workspacesDTO     `json:"workspaces"`
}

type enginesDTO struct {
	Node string `json:"node"`
}

// workspacesDTO accepts both npm spellings of the workspaces field:
// a plain list of globs or an object with a "packages" list.
type workspacesDTO []string

var errWorkspacesShape = errors.New(`"workspaces" must be a list of globs or an object with a "packages" list`)

// UnmarshalJSON implements json.Unmarshaler.
func (w *workspacesDTO) UnmarshalJSON(data []byte) error {
	var list []string
	if err := json.Unmarshal(data, &list); err == nil {
		*w = list
		return nil
	}

	var obj struct {
		Packages []string `json:"packages"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return errWorkspacesShape
	}
	*w = obj.Packages
	return nil
}

// pnpmWorkspace represents the structure of pnpm-workspace.yaml.
type pnpmWorkspace struct {
	Packages []string `yaml:"packages"`
}
