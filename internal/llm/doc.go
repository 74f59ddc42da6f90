// Package llm extracts structured transaction records from free-text
// bookkeeping statements via external language model providers.
//
// Two providers are supported: Gemini, which enforces the record shape
// through a declared response schema, and DeepSeek, an instruction-only
// chat-completions API whose responses are shape-normalized after the fact.
// The Parser orchestrates prompt construction, provider dispatch and the
// shared post-processing defaults.
package llm
