package render

import (
	"bytes"
	"text/template"

	"github.com/fedforge/fedforge/internal/domain"
)

// The build-tool configuration is derived entirely from
// federation.config.json: remotes become name@entry references, exposes and
// shared pass through unchanged. Only loader wiring varies, and that varies
// on framework and TypeScript alone.
const webpackTemplate = `const path = require('path');
const HtmlWebpackPlugin = require('html-webpack-plugin');
const { ModuleFederationPlugin } = require('webpack').container;
{{- if .Vue}}
const { VueLoaderPlugin } = require('vue-loader');
{{- end}}

const federation = require('./federation.config.json');

const remotes = {};
for (const remote of federation.remotes || []) {
  remotes[remote.name] = remote.name + '@' + remote.entry;
}

module.exports = {
  entry: './src/index',
  mode: 'development',
  devServer: {
    port: federation.port,
    hot: federation.devServer.hot,
    historyApiFallback: federation.devServer.historyApiFallback,
    headers: federation.devServer.cors
      ? { 'Access-Control-Allow-Origin': '*' }
      : {},
  },
  output: {
    path: path.resolve(__dirname, federation.build.outputPath),
    publicPath: federation.build.publicPath,
  },
  resolve: {
    extensions: [{{.Extensions}}],
  },
  module: {
    rules: [
{{- if .Vue}}
      {
        test: /\.vue$/,
        loader: 'vue-loader',
      },
{{- end}}
{{- if .TypeScript}}
      {
        test: /\.tsx?$/,
        loader: 'ts-loader',
        exclude: /node_modules/,
{{- if .Vue}}
        options: { appendTsSuffixTo: [/\.vue$/] },
{{- end}}
      },
{{- end}}
{{- if .Babel}}
      {
        test: /\.jsx?$/,
        loader: 'babel-loader',
        exclude: /node_modules/,
        options: { presets: ['@babel/preset-react'] },
      },
{{- end}}
    ],
  },
  plugins: [
    new ModuleFederationPlugin({
      name: federation.name,
      filename: 'remoteEntry.js',
      exposes: federation.exposes || {},
      remotes,
      shared: federation.shared,
    }),
    new HtmlWebpackPlugin({ template: './public/index.html' }),
{{- if .Vue}}
    new VueLoaderPlugin(),
{{- end}}
  ],
};
`

var webpackTmpl = template.Must(template.New("webpack").Parse(webpackTemplate))

type webpackModel struct {
	Vue        bool
	TypeScript bool
	Babel      bool
	Extensions string
}

// WebpackConfig renders webpack.config.js for the given configuration.
func WebpackConfig(cfg domain.ProjectConfiguration) ([]byte, error) {
	m := webpackModel{
		Vue:        cfg.Framework == domain.FrameworkVue,
		TypeScript: cfg.TypeScript,
		Babel:      cfg.Framework == domain.FrameworkReact,
		Extensions: extensionList(cfg),
	}
	var buf bytes.Buffer
	if err := webpackTmpl.Execute(&buf, m); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func extensionList(cfg domain.ProjectConfiguration) string {
	var exts []string
	if cfg.TypeScript {
		if cfg.Framework == domain.FrameworkReact {
			exts = append(exts, ".tsx")
		}
		exts = append(exts, ".ts")
	}
	if cfg.Framework == domain.FrameworkReact {
		exts = append(exts, ".jsx")
	}
	exts = append(exts, ".js")
	if cfg.Framework == domain.FrameworkVue {
		exts = append(exts, ".vue")
	}

	quoted := make([]byte, 0, 32)
	for i, e := range exts {
		if i > 0 {
			quoted = append(quoted, ", "...)
		}
		quoted = append(quoted, '\'')
		quoted = append(quoted, e...)
		quoted = append(quoted, '\'')
	}
	return string(quoted)
}
