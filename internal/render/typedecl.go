package render

import (
	"fmt"
	"strings"

	"github.com/fedforge/fedforge/internal/domain"
)

type tsconfigDoc struct {
	CompilerOptions tsCompilerOptions `json:"compilerOptions"`
	Include         []string          `json:"include"`
}

type tsCompilerOptions struct {
	Target           string `json:"target"`
	Module           string `json:"module"`
	ModuleResolution string `json:"moduleResolution"`
	JSX              string `json:"jsx,omitempty"`
	Strict           bool   `json:"strict"`
	EsModuleInterop  bool   `json:"esModuleInterop"`
	SkipLibCheck     bool   `json:"skipLibCheck"`
}

// TSConfig renders tsconfig.json for a TypeScript application.
func TSConfig(cfg domain.ProjectConfiguration) ([]byte, error) {
	doc := tsconfigDoc{
		CompilerOptions: tsCompilerOptions{
			Target:           "ES2020",
			Module:           "ESNext",
			ModuleResolution: "bundler",
			Strict:           true,
			EsModuleInterop:  true,
			SkipLibCheck:     true,
		},
		Include: []string{"src"},
	}
	if cfg.Framework == domain.FrameworkReact {
		doc.CompilerOptions.JSX = "react-jsx"
	}
	return marshalJSON(doc)
}

// RemoteDeclarations renders src/remotes.d.ts for a TypeScript host: one
// ambient module declaration per federated import, so the compiler accepts
// modules that only exist at runtime.
func RemoteDeclarations(host domain.HostWiring, fw domain.Framework) []byte {
	var b strings.Builder
	for i, r := range host.Remotes {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "declare module '%s/App' {\n", r.Name)
		switch fw {
		case domain.FrameworkVue:
			b.WriteString("  import type { DefineComponent } from 'vue';\n")
			b.WriteString("  const App: DefineComponent;\n")
		default:
			b.WriteString("  import type { ComponentType } from 'react';\n")
			b.WriteString("  const App: ComponentType;\n")
		}
		b.WriteString("  export default App;\n")
		b.WriteString("}\n")
	}
	return []byte(b.String())
}

// VueShims renders src/shims-vue.d.ts so TypeScript accepts .vue imports.
func VueShims() []byte {
	return []byte(`declare module '*.vue' {
  import type { DefineComponent } from 'vue';
  const component: DefineComponent;
  export default component;
}
`)
}

// SharedTypesDeclaration renders the index.d.ts of the shared-types
// workspace member: the contract every application in the workspace links
// against.
func SharedTypesDeclaration() []byte {
	return []byte(`// Shared type contracts for every application in this workspace.
// Import from 'shared-types' via the workspace link.

export interface FederatedModuleProps {
  basePath?: string;
}

export interface UserSession {
  id: string;
  displayName: string;
}
`)
}
