package render

import (
	"fmt"
	"strings"

	"github.com/fedforge/fedforge/internal/domain"
)

// sourceDoc is the intermediate model for a generated script file: imports
// first, then body lines. Framework-specific formatters fill it; one
// renderer turns it into bytes. No conditional string concatenation happens
// inline at the call sites.
type sourceDoc struct {
	imports []importSpec
	body    []string
}

// importSpec is one import line. An empty Clause renders a side-effect
// import; an empty From renders a bare dynamic-import statement unchanged
// from Clause.
type importSpec struct {
	Clause string
	From   string
}

func (d *sourceDoc) addImport(clause, from string) {
	d.imports = append(d.imports, importSpec{Clause: clause, From: from})
}

func (d *sourceDoc) line(format string, args ...any) {
	d.body = append(d.body, fmt.Sprintf(format, args...))
}

func (d *sourceDoc) render() []byte {
	var b strings.Builder
	for _, imp := range d.imports {
		if imp.Clause == "" {
			fmt.Fprintf(&b, "import '%s';\n", imp.From)
		} else {
			fmt.Fprintf(&b, "import %s from '%s';\n", imp.Clause, imp.From)
		}
	}
	if len(d.imports) > 0 && len(d.body) > 0 {
		b.WriteString("\n")
	}
	for _, l := range d.body {
		b.WriteString(l)
		b.WriteString("\n")
	}
	return []byte(b.String())
}

func scriptExt(cfg domain.ProjectConfiguration) string {
	if cfg.TypeScript {
		return "ts"
	}
	return "js"
}

func componentExt(cfg domain.ProjectConfiguration) string {
	switch cfg.Framework {
	case domain.FrameworkVue:
		return "vue"
	default:
		if cfg.TypeScript {
			return "tsx"
		}
		return "jsx"
	}
}

// EntryFileName is the application entry point webpack resolves first.
func EntryFileName(cfg domain.ProjectConfiguration) string {
	return "src/index." + scriptExt(cfg)
}

// EntrySource renders the entry file. It contains nothing but a dynamic
// import of the bootstrap file: that import is the asynchronous boundary
// the federation runtime needs to finish negotiating shared-dependency
// versions across all participating bundles before any application code
// runs. Mounting synchronously here would pin a stale or duplicate
// framework copy.
func EntrySource(cfg domain.ProjectConfiguration) []byte {
	doc := &sourceDoc{}
	doc.line("// The dynamic import is load-bearing: shared dependency versions are")
	doc.line("// negotiated across all federated bundles before bootstrap executes.")
	doc.line("import('./bootstrap');")
	return doc.render()
}

// BootstrapFileName is the file performing the actual framework mount.
func BootstrapFileName(cfg domain.ProjectConfiguration) string {
	if cfg.Framework == domain.FrameworkVue {
		return "src/bootstrap." + scriptExt(cfg)
	}
	if cfg.TypeScript {
		return "src/bootstrap.tsx"
	}
	return "src/bootstrap.jsx"
}

// BootstrapSource renders the mount half of the two-file initialization
// sequence.
func BootstrapSource(cfg domain.ProjectConfiguration) []byte {
	doc := &sourceDoc{}
	switch cfg.Framework {
	case domain.FrameworkVue:
		doc.addImport("{ createApp }", "vue")
		doc.addImport("App", "./App.vue")
		doc.line("createApp(App).mount('#root');")
	default:
		doc.addImport("React", "react")
		doc.addImport("{ createRoot }", "react-dom/client")
		doc.addImport("App", "./App")
		doc.line("const root = createRoot(document.getElementById('root')%s);", nonNullAssertion(cfg))
		doc.line("root.render(<App />);")
	}
	return doc.render()
}

func nonNullAssertion(cfg domain.ProjectConfiguration) string {
	if cfg.TypeScript {
		return "!"
	}
	return ""
}

// AppFileName is the root component file. For remotes this is the local
// source behind the default exposed module path.
func AppFileName(cfg domain.ProjectConfiguration) string {
	return "src/App." + componentExt(cfg)
}

// AppComponent renders the root component. Hosts import and render one
// component per declared remote, in declaration order; remotes and
// standalone apps render a plain greeting.
func AppComponent(cfg domain.ProjectConfiguration, d *domain.FederationDescriptor) []byte {
	if cfg.Framework == domain.FrameworkVue {
		return vueAppComponent(cfg, d)
	}
	return reactAppComponent(cfg, d)
}

func reactAppComponent(cfg domain.ProjectConfiguration, d *domain.FederationDescriptor) []byte {
	doc := &sourceDoc{}
	doc.addImport("React", "react")

	var tags []string
	if host := d.Host(); host != nil {
		for _, r := range host.Remotes {
			name := remoteComponentName(r.Name)
			doc.addImport(name, r.Name+"/App")
			tags = append(tags, fmt.Sprintf("    <%s />", name))
		}
	}

	doc.line("const App = () => (")
	doc.line("  <div>")
	doc.line("    <h1>%s</h1>", d.Identifier)
	doc.line("    <p>%s · %s · port %d</p>", cfg.Role, cfg.Framework, cfg.Port)
	doc.body = append(doc.body, tags...)
	doc.line("  </div>")
	doc.line(");")
	doc.line("")
	doc.line("export default App;")
	return doc.render()
}

func vueAppComponent(cfg domain.ProjectConfiguration, d *domain.FederationDescriptor) []byte {
	var b strings.Builder

	b.WriteString("<script>\n")
	host := d.Host()
	if host != nil && len(host.Remotes) > 0 {
		b.WriteString("import { defineAsyncComponent } from 'vue';\n\n")
	}
	b.WriteString("export default {\n")
	fmt.Fprintf(&b, "  name: '%s',\n", d.Identifier)
	if host != nil && len(host.Remotes) > 0 {
		b.WriteString("  components: {\n")
		for _, r := range host.Remotes {
			fmt.Fprintf(&b, "    %s: defineAsyncComponent(() => import('%s/App')),\n",
				remoteComponentName(r.Name), r.Name)
		}
		b.WriteString("  },\n")
	}
	b.WriteString("};\n")
	b.WriteString("</script>\n\n")

	b.WriteString("<template>\n")
	b.WriteString("  <div>\n")
	fmt.Fprintf(&b, "    <h1>%s</h1>\n", d.Identifier)
	fmt.Fprintf(&b, "    <p>%s · %s · port %d</p>\n", cfg.Role, cfg.Framework, cfg.Port)
	if host != nil {
		for _, r := range host.Remotes {
			fmt.Fprintf(&b, "    <%s />\n", remoteComponentName(r.Name))
		}
	}
	b.WriteString("  </div>\n")
	b.WriteString("</template>\n")
	return []byte(b.String())
}

// remoteComponentName derives the local component name for an imported
// remote: "products" -> "ProductsApp".
func remoteComponentName(remote string) string {
	trimmed := strings.TrimLeft(remote, "_$")
	if trimmed == "" {
		trimmed = remote
	}
	return strings.ToUpper(trimmed[:1]) + trimmed[1:] + "App"
}

// IndexHTML renders the static page the dev server serves.
func IndexHTML(d *domain.FederationDescriptor) []byte {
	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n")
	b.WriteString("<html lang=\"en\">\n")
	b.WriteString("  <head>\n")
	b.WriteString("    <meta charset=\"utf-8\" />\n")
	fmt.Fprintf(&b, "    <title>%s</title>\n", d.Identifier)
	b.WriteString("  </head>\n")
	b.WriteString("  <body>\n")
	b.WriteString("    <div id=\"root\"></div>\n")
	b.WriteString("  </body>\n")
	b.WriteString("</html>\n")
	return []byte(b.String())
}
