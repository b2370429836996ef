package prompts

const analyzeSpec = `Respond with a JSON object matching this exact structure:

{
  "document_type": "<type>",
  "content_sections": ["<section1>", "<section2>"],
  "formatting_elements": ["<element1>", "<element2>"],
  "technical_terminology": ["<term1>", "<term2>"],
  "complexity_level": "<low|medium|high>"
}

Field constraints:
- document_type: The document's register and genre (e.g., formal,
  informal, technical, creative, legal, marketing).
- content_sections: The structural sections present in the document,
  in order of appearance.
- formatting_elements: Formatting constructs that must be preserved
  during translation (tables, lists, headers, code blocks). Empty
  array when the document is plain prose.
- technical_terminology: Domain terms that should be preserved or
  handled with care during translation. Empty array when none apply.
- complexity_level: Overall translation complexity. low = plain prose
  with common vocabulary. medium = specialized vocabulary or light
  structure. high = dense terminology, nested formatting, or register
  shifts.

Behavioral constraints:
- Always respond with valid JSON, no markdown fencing
- Base the analysis only on the provided content
- When the document is truncated, analyze what is present without
  speculating about omitted sections`

const translateSpec = `Respond with the translated text only.

Behavioral constraints:
- Preserve the original paragraph breaks, lists, tables, and headers
- Do not include the source text, commentary, or a preamble
- Do not wrap the output in markdown fencing
- Leave terms flagged for preservation in their original form`

const reviewSpec = `Respond with a JSON object matching this exact structure:

{
  "overall_quality": 0,
  "accuracy": 0,
  "fluency": 0,
  "style_preservation": 0,
  "specific_issues": ["<issue1>", "<issue2>"],
  "suggested_corrections": ["<correction1>", "<correction2>"]
}

Field constraints:
- overall_quality: Integer 1-10 assessment of the translation as a whole.
- accuracy: Integer 1-10. How faithfully the translation conveys the
  source meaning.
- fluency: Integer 1-10. How naturally the translation reads in the
  target language.
- style_preservation: Integer 1-10. How well tone, register, and
  formatting carry over from the source.
- specific_issues: Concrete problems found, each tied to the passage
  where it occurs. Empty array when none.
- suggested_corrections: Actionable corrections matching the issues
  found. Empty array when none.

Behavioral constraints:
- Always respond with valid JSON, no markdown fencing
- Scores are integers, never strings or fractions
- When source and translation are provided as samples, judge only the
  sampled sections`

const refineSpec = `Respond with the corrected translation only.

Behavioral constraints:
- Apply the identified issues and suggested corrections
- Translate the full source text, not just the flagged passages
- Preserve passages the review did not flag
- Do not include commentary or a preamble`

const enhanceSpec = `Respond with the improved translation only.

Behavioral constraints:
- Preserve the meaning, tone, and style of the current translation
- Adapt phrasing for the target language's regional conventions
- Do not include the source text, commentary, or a preamble
- Do not wrap the output in markdown fencing`

var specs = map[Stage]string{
	StageAnalyze:   analyzeSpec,
	StageTranslate: translateSpec,
	StageReview:    reviewSpec,
	StageRefine:    refineSpec,
	StageEnhance:   enhanceSpec,
}

// Spec returns the hardcoded specification for a pipeline stage.
// Specifications define the expected output format and behavioral constraints.
// Returns ErrInvalidStage if the stage is not recognized.
func Spec(stage Stage) (string, error) {
	text, ok := specs[stage]
	if !ok {
		return "", ErrInvalidStage
	}
	return text, nil
}
