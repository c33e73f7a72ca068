package http

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// planRequestSchema validates incoming plan documents before any decoding.
// Amounts are decimal strings or "@ref" symbolic references; token
// identifiers are hex addresses (the native sentinel included).
const planRequestSchema = `{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"type": "object",
	"required": ["chainId", "voucherRequest"],
	"properties": {
		"chainId": {"type": "integer", "minimum": 1},
		"feeConfig": {
			"type": "object",
			"properties": {
				"maxFeePercent": {"type": "number", "minimum": 0}
			},
			"additionalProperties": false
		},
		"voucherRequest": {
			"type": "object",
			"required": ["assets"],
			"properties": {
				"id": {"type": "string"},
				"assets": {
					"type": "array",
					"minItems": 1,
					"items": {
						"type": "object",
						"required": ["token", "amount"],
						"properties": {
							"token": {"type": "string", "pattern": "^0x[a-fA-F0-9]{40}$"},
							"amount": {"type": "string", "pattern": "^([0-9]+|@.+)$"}
						},
						"additionalProperties": false
					}
				},
				"metadata": {"type": "object"}
			},
			"additionalProperties": false
		}
	},
	"additionalProperties": false
}`

// ValidatePlanDocument checks a raw plan request body against the plan
// schema. Returns a single error listing every schema violation.
func ValidatePlanDocument(body []byte) error {
	schemaLoader := gojsonschema.NewStringLoader(planRequestSchema)
	documentLoader := gojsonschema.NewBytesLoader(body)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return fmt.Errorf("invalid plan document: %w", err)
	}
	if result.Valid() {
		return nil
	}

	violations := make([]string, 0, len(result.Errors()))
	for _, desc := range result.Errors() {
		violations = append(violations, desc.String())
	}
	return fmt.Errorf("invalid plan document: %s", strings.Join(violations, "; "))
}
