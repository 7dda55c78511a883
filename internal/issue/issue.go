// SPDX-License-Identifier: MPL-2.0

package issue

import "github.com/charmbracelet/glamour"

type Id int

const (
	AsdfInstallFailedId Id = iota + 1
	PluginAddFailedId
	RuntimeInstallFailedId
	UnknownJavaVersionId
	RuntimeActivateFailedId
	NpmRegistryFailedId
	DockerLoginFailedId
	NpmUpdateFailedId
	ConfigLoadFailedId
	EnvironmentNotFoundId
	ToolNotFoundId
)

type MarkdownMsg string

type HttpLink string

type Issue struct {
	id       Id          // ID used to lookup the issue
	mdMsg    MarkdownMsg // Markdown text that will be rendered
	docLinks []HttpLink  // upstream documentation for the tool involved
}

func (i *Issue) Id() Id {
	return i.id
}

func (i *Issue) MarkdownMsg() MarkdownMsg {
	return i.mdMsg
}

// Render renders the issue as terminal Markdown using the given glamour style
// ("dark", "light", "notty", ...).
func (i *Issue) Render(stylePath string) (string, error) {
	extraMd := ""
	if len(i.docLinks) > 0 {
		extraMd += "\n\n## See also\n"
		for _, link := range i.docLinks {
			extraMd += "- <" + string(link) + ">\n"
		}
	}
	return render(string(i.mdMsg)+extraMd, stylePath)
}

var (
	render = glamour.Render

	asdfInstallFailedIssue = &Issue{
		id: AsdfInstallFailedId,
		mdMsg: `
# asdf could not be installed!

hopla clones asdf with git before anything else. The clone failed, so no other step ran.

## Things you can try:
- Check that git is installed:
~~~
$ hopla doctor
~~~
- Check your network access to github.com
- Remove a partially cloned directory and retry:
~~~
$ rm -rf ~/.asdf
~~~`,
		docLinks: []HttpLink{"https://asdf-vm.com/guide/getting-started.html"},
	}

	pluginAddFailedIssue = &Issue{
		id: PluginAddFailedId,
		mdMsg: `
# asdf plugin could not be added!

The runtime plugin was not registered and adding it failed.

## Things you can try:
- List the plugins asdf already knows about:
~~~
$ asdf plugin-list
~~~
- Check the plugin repository URL in your configuration (` + "`asdf.plugins`" + `)
- Retry with verbose output:
~~~
$ hopla -v switch <environment>
~~~`,
		docLinks: []HttpLink{"https://asdf-vm.com/manage/plugins.html"},
	}

	runtimeInstallFailedIssue = &Issue{
		id: RuntimeInstallFailedId,
		mdMsg: `
# Runtime version could not be installed!

asdf failed to install the requested version.

## Things you can try:
- Check the requested version exists:
~~~
$ asdf list-all nodejs
~~~
- Check build dependencies required by the plugin are installed`,
		docLinks: []HttpLink{"https://github.com/asdf-vm/asdf-nodejs"},
	}

	unknownJavaVersionIssue = &Issue{
		id: UnknownJavaVersionId,
		mdMsg: `
# Java version not available!

The asdf-java plugin names versions by distribution, e.g. ` + "`temurin-17.0.9+9`" + `.
A bare number such as ` + "`17`" + ` is usually not a valid version.

## Things you can try:
- List the versions the plugin knows about:
~~~
$ asdf list-all java
~~~
- Run the command again with a valid version:
~~~
$ hopla switch <environment> --java temurin-17.0.9+9
~~~`,
		docLinks: []HttpLink{"https://github.com/halcyon/asdf-java"},
	}

	runtimeActivateFailedIssue = &Issue{
		id: RuntimeActivateFailedId,
		mdMsg: `
# Runtime version could not be activated!

The version is installed but setting it as the global default, or refreshing
the shims, failed.

## Things you can try:
- Check that ` + "`~/.tool-versions`" + ` is writable
- Refresh the shims manually:
~~~
$ asdf reshim
~~~`,
		docLinks: []HttpLink{"https://asdf-vm.com/manage/versions.html"},
	}

	npmRegistryFailedIssue = &Issue{
		id: NpmRegistryFailedId,
		mdMsg: `
# NPM registry could not be set!

## Things you can try:
- Check that npm is installed and on your PATH
- Check that the registry URL is valid, e.g. ` + "`https://registry.npmjs.org/`" + `
- Check that ` + "`~/.npmrc`" + ` is writable`,
		docLinks: []HttpLink{"https://docs.npmjs.com/cli/commands/npm-config"},
	}

	dockerLoginFailedIssue = &Issue{
		id: DockerLoginFailedId,
		mdMsg: `
# Docker registry login failed!

## Things you can try:
- Check that the Docker daemon is running:
~~~
$ docker info
~~~
- Check the registry host name and your credentials
- Log in manually to see the full error:
~~~
$ docker login <registry>
~~~`,
		docLinks: []HttpLink{"https://docs.docker.com/reference/cli/docker/login/"},
	}

	npmUpdateFailedIssue = &Issue{
		id: NpmUpdateFailedId,
		mdMsg: `
# NPM could not be updated!

## Things you can try:
- Check that the requested npm version exists:
~~~
$ npm view npm versions
~~~
- Check that the active Node.js version supports it`,
		docLinks: []HttpLink{"https://docs.npmjs.com/cli/commands/npm-install"},
	}

	configLoadFailedIssue = &Issue{
		id: ConfigLoadFailedId,
		mdMsg: `
# Failed to load configuration!

## Things you can try:
- Show where hopla looks for its configuration:
~~~
$ hopla config path
~~~
- Create a default configuration file:
~~~
$ hopla config init
~~~
- Check the file for CUE syntax errors`,
	}

	environmentNotFoundIssue = &Issue{
		id: EnvironmentNotFoundId,
		mdMsg: `
# Environment not found!

The environment is not defined in your configuration and no settings were given
on the command line.

## Things you can try:
- List the configured environments:
~~~
$ hopla env list
~~~
- Pass the settings explicitly:
~~~
$ hopla switch staging --node 18.0.0 --npm-registry https://registry.example.com
~~~`,
	}

	toolNotFoundIssue = &Issue{
		id: ToolNotFoundId,
		mdMsg: `
# Required tool not found!

hopla drives external command-line tools and could not find one of them on your PATH.

## Things you can try:
- See which tools are missing:
~~~
$ hopla doctor
~~~
- Install the missing tool and open a new shell`,
	}

	issues = map[Id]*Issue{
		asdfInstallFailedIssue.Id():     asdfInstallFailedIssue,
		pluginAddFailedIssue.Id():       pluginAddFailedIssue,
		runtimeInstallFailedIssue.Id():  runtimeInstallFailedIssue,
		unknownJavaVersionIssue.Id():    unknownJavaVersionIssue,
		runtimeActivateFailedIssue.Id(): runtimeActivateFailedIssue,
		npmRegistryFailedIssue.Id():     npmRegistryFailedIssue,
		dockerLoginFailedIssue.Id():     dockerLoginFailedIssue,
		npmUpdateFailedIssue.Id():       npmUpdateFailedIssue,
		configLoadFailedIssue.Id():      configLoadFailedIssue,
		environmentNotFoundIssue.Id():   environmentNotFoundIssue,
		toolNotFoundIssue.Id():          toolNotFoundIssue,
	}
)

func Get(id Id) *Issue {
	return issues[id]
}
