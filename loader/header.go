package loader

import (
	"strings"

	"github.com/go-sif/arff/errors"
	"github.com/go-sif/arff/internal/quoted"
	"github.com/go-sif/arff/relation"
	"github.com/go-sif/arff/schema"
)

const (
	relationDirective  = "@relation"
	attributeDirective = "@attribute"
	dataDirective      = "@data"
)

// loadHeaderLine applies one header line to rel, returning true once the @data marker is reached
func loadHeaderLine(rel *relation.Relation, line string) (bool, error) {
	tokens := quoted.Split(line, ' ')
	directive, ok := tokens.NextFragment()
	if !ok {
		return false, nil
	}
	switch directive {
	case relationDirective:
		name, ok := tokens.Next()
		if !ok {
			return false, errors.MissingArgumentError{Directive: relationDirective}
		}
		rel.SetName(name)
		return false, nil
	case attributeDirective:
		name, ok := tokens.Next()
		if !ok {
			return false, errors.MissingArgumentError{Directive: attributeDirective}
		}
		attrType, err := schema.ParseAttributeType(strings.TrimSpace(strings.Join(tokens.Rest(), " ")))
		if err != nil {
			return false, err
		}
		_, err = rel.Schema().CreateAttribute(name, attrType)
		return false, err
	case dataDirective:
		return true, nil
	case "":
		return false, nil
	default:
		return false, errors.UnrecognizedTokenError{Token: directive}
	}
}
