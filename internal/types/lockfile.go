package types

// LockManifest models the machine-written lake-manifest.json. Only the
// fields needed to reconstruct dependency declarations are read.
type LockManifest struct {
	Name     string        `json:"name"`
	Packages []LockPackage `json:"packages"`
}

type LockPackage struct {
	Name   string `json:"name"`
	URL    string `json:"url"`
	Git    string `json:"git"`
	GitURL string `json:"gitUrl"`
}

// SourceURL returns the first populated source location of the package.
func (p LockPackage) SourceURL() string {
	switch {
	case p.URL != "":
		return p.URL
	case p.Git != "":
		return p.Git
	default:
		return p.GitURL
	}
}
