// Package schemas provides embedded JSON schemas for chapter content blocks.
package schemas

import _ "embed"

// QuizBlock is the JSON schema of a qcm block body.
//
//go:embed qcm.schema.json
var QuizBlock []byte
