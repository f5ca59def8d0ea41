//    InfluenceEngine
//    Copyright: Z Mankow 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package str

import "fmt"

//
// THE ERROR TAXONOMY
//

// LoadError - the corpus on disk is malformed or unreadable
type LoadError struct {
	Path   string
	Reason string
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("corpus load failed at '%s': %s", e.Path, e.Reason)
}

// ConfigError - a requested setting cannot work against this corpus
type ConfigError struct {
	Setting string
	Reason  string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("bad configuration for '%s': %s", e.Setting, e.Reason)
}

// InsufficientDataError - an era is too thin to model; pairs touching it are skipped, the run continues
type InsufficientDataError struct {
	Era    string
	Have   int
	Needed int
}

func (e *InsufficientDataError) Error() string {
	return fmt.Sprintf("era '%s' has %d tokens but %d are required", e.Era, e.Have, e.Needed)
}
