package main

import (
	"fmt"

	"github.com/arcadeio/bindcore/internal/version"
)

var descriptionTemplate = `
Arcade input binding and resolution engine
  Version: %s (%s)
           %s
`

func Description() string {
	return fmt.Sprintf(descriptionTemplate, version.Version, version.Commit, version.Date)
}
