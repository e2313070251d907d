// internal/workers/infrastructure/build-response/schema.go
package buildresponse

// resultSchema is the contract a submission result must satisfy before it is
// wrapped in the response envelope. It mirrors the two shapes a result can
// take: a valid run carrying summary/blindspots/matches/insight, or an
// invalid run carrying missingFields, invalidFields, or an error message.
const resultSchema = `{
	"type": "object",
	"required": ["valid"],
	"properties": {
		"valid": {"type": "boolean"},
		"missingFields": {"type": "array", "items": {"type": "string"}},
		"invalidFields": {"type": "array", "items": {"type": "string"}},
		"error": {"type": "string"},
		"profileSummary": {"type": "string"},
		"blindspots": {
			"type": "array",
			"items": {
				"type": "object",
				"required": ["category", "reason", "relevanceScore"],
				"properties": {
					"category": {"type": "string", "minLength": 1},
					"reason": {"type": "string", "minLength": 1},
					"relevanceScore": {"type": "number", "minimum": 0, "maximum": 1}
				}
			}
		},
		"matches": {
			"type": "array",
			"items": {
				"type": "object",
				"required": ["opportunity", "relevanceScore", "missProbability"],
				"properties": {
					"opportunity": {
						"type": "object",
						"required": ["id", "name"],
						"properties": {
							"id": {"type": "string", "minLength": 1},
							"name": {"type": "string", "minLength": 1}
						}
					},
					"fitExplanation": {"type": "string"},
					"missReason": {"type": "string"},
					"missProbability": {"type": "string", "enum": ["High", "Medium", "Low"]},
					"relevanceScore": {"type": "number", "minimum": 0, "maximum": 1}
				}
			}
		},
		"finalInsight": {"type": "string"},
		"noMatches": {"type": "boolean"}
	}
}`
