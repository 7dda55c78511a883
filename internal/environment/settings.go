// SPDX-License-Identifier: MPL-2.0

package environment

// Settings describes the target state of an environment. Every field is optional;
// an empty field skips the corresponding step in both Configure and Inspect.
type Settings struct {
	// Node is the Node.js version installed and activated through asdf.
	Node string
	// Java is the asdf-java version (e.g., "temurin-17.0.9+9").
	Java string
	// Npm is the npm version installed globally.
	Npm string
	// NpmRegistry is the registry URL written to the npm configuration.
	NpmRegistry string
	// DockerRegistry is the registry host passed to docker login.
	DockerRegistry string
}

// IsEmpty reports whether no field is set.
func (s Settings) IsEmpty() bool {
	return s == Settings{}
}
