package plugin

import "github.com/axle-labs/axle/internal/home"

// SettingsFor returns the merged settings payload for the named plugin: a
// shallow union of the global settings from the lock record and the
// project settings from the override file, with project keys winning.
// Missing entries on either side are empty payloads, never an error.
func SettingsFor(name, cwd string) (map[string]any, error) {
	lockPath, err := home.LockPath()
	if err != nil {
		return nil, err
	}
	state, err := LoadState(lockPath)
	if err != nil {
		return nil, err
	}
	return mergeSettings(state.settingsFor(name), LoadOverrides(cwd).Settings[name]), nil
}

// mergeSettings returns global with project keys laid over it. Both inputs
// are left untouched.
func mergeSettings(global, project map[string]any) map[string]any {
	merged := make(map[string]any, len(global)+len(project))
	for k, v := range global {
		merged[k] = v
	}
	for k, v := range project {
		merged[k] = v
	}
	return merged
}
