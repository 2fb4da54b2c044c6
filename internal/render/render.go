// Package render turns synthesized domain records into the exact bytes of
// the generated files. Every function here is pure: same descriptor in,
// same bytes out. Nothing in this package touches the filesystem.
package render

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/fedforge/fedforge/internal/domain"
)

// marshalJSON is the one JSON formatter for every emitted .json artifact:
// two-space indent, trailing newline, sorted map keys (encoding/json
// guarantees the ordering), so re-running the generator is byte-identical.
func marshalJSON(v any) ([]byte, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

// federation.config.json document. This file is the single source of truth
// the build-tool configuration reads at build time; the webpack config must
// not hardcode any value present here.
type federationConfigDoc struct {
	Name      string                        `json:"name"`
	Type      string                        `json:"type"`
	Port      int                           `json:"port"`
	Framework string                        `json:"framework"`
	Exposes   map[string]string             `json:"exposes,omitempty"`
	Remotes   []remoteEntryDoc              `json:"remotes,omitempty"`
	Shared    domain.SharedDependencyPolicy `json:"shared"`
	Build     buildDoc                      `json:"build"`
	DevServer devServerDoc                  `json:"devServer"`
}

type remoteEntryDoc struct {
	Name  string `json:"name"`
	URL   string `json:"url"`
	Entry string `json:"entry"`
}

type buildDoc struct {
	OutputPath string `json:"outputPath"`
	PublicPath string `json:"publicPath"`
}

type devServerDoc struct {
	Hot                bool `json:"hot"`
	HistoryAPIFallback bool `json:"historyApiFallback"`
	CORS               bool `json:"cors"`
}

// FederationConfig renders federation.config.json from a descriptor.
func FederationConfig(d *domain.FederationDescriptor) ([]byte, error) {
	doc := federationConfigDoc{
		Name:      d.Identifier,
		Type:      string(d.Wiring.Role()),
		Port:      d.Port,
		Framework: string(d.Framework),
		Shared:    d.Shared,
		Build:     buildDoc{OutputPath: d.Build.Directory, PublicPath: d.Build.PublicPathMode},
		DevServer: devServerDoc{
			Hot:                d.DevServer.HotReload,
			HistoryAPIFallback: d.DevServer.SPAFallback,
			CORS:               d.DevServer.CORS,
		},
	}

	switch w := d.Wiring.(type) {
	case domain.HostWiring:
		for _, r := range w.Remotes {
			doc.Remotes = append(doc.Remotes, remoteEntryDoc{
				Name:  r.Name,
				URL:   r.URL,
				Entry: RemoteEntryURL(r.URL),
			})
		}
	case domain.RemoteWiring:
		doc.Exposes = w.ExposeMap()
	}

	return marshalJSON(doc)
}

// RemoteEntryURL resolves a declared remote URL to its federation entry
// resource: URLs already naming a .js resource pass through, anything else
// gets the conventional /remoteEntry.js appended.
func RemoteEntryURL(url string) string {
	if strings.HasSuffix(url, ".js") {
		return url
	}
	return strings.TrimRight(url, "/") + "/remoteEntry.js"
}

// Manifest renders a package.json document.
func Manifest(m domain.Manifest) ([]byte, error) {
	return marshalJSON(m)
}

// GitIgnore renders the .gitignore placed at the scaffolded root.
func GitIgnore() []byte {
	return []byte("node_modules/\ndist/\n.turbo/\n.nx/\n*.log\n")
}

// Readme renders the short top-level README for one application.
func Readme(cfg domain.ProjectConfiguration, d *domain.FederationDescriptor) []byte {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", d.Identifier)
	fmt.Fprintf(&b, "A module-federation %s built with %s.\n\n", cfg.Role, cfg.Framework)
	fmt.Fprintf(&b, "```sh\n%s install\n%s run dev\n```\n\n", cfg.PackageManager, cfg.PackageManager)
	fmt.Fprintf(&b, "The dev server listens on port %d. All federation settings live in\n", cfg.Port)
	b.WriteString("`federation.config.json`; `webpack.config.js` only translates them.\n")
	return []byte(b.String())
}
