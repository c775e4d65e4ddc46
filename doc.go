// Package toolcall validates and normalizes LLM tool-call payloads against a
// fixed search/answer schema.
//
// # Overview
//
// LLMs produce tool-call arguments that are almost right: enum values arrive
// padded with whitespace, integers arrive as quoted strings, extra keys
// appear. This package turns such a payload into a clean, typed Call or a
// list of human-readable problems: classify each field by runtime shape →
// trim and coerce → apply defaults → report every problem in one pass.
//
// Pipeline: raw payload → Validate (classify, trim, coerce, default) → Call
// (Search or Answer variant) → Map or JSON for the cleaned wire form.
//
// # Key concepts
//
//   - All-or-nothing: any validation problem discards the entire cleaned
//     payload; callers never see a half-built Call.
//   - Self-Correction: ParseAndValidate wraps problems in ClientError so the
//     message can go straight back to the LLM.
//   - Single Source of Truth: Schema is the document shown to the LLM, and
//     SchemaValidate checks strictly conforming payloads against it.
//
// See Call, Search, Answer for the result types, and Validate /
// ParseAndValidate for the entry points.
//
// # Example
//
//	call, errs := toolcall.Validate(map[string]any{
//	    "action": " search ",
//	    "q":      "  testing  ",
//	    "k":      " 1 ",
//	})
//	if len(errs) > 0 { ... }
//	fmt.Println(call.Map()) // map[action:search k:1 q:testing]
package toolcall
