// Package llm provides the optional text generation collaborator. It supports
// Anthropic and OpenAI backends, with response caching, rate limiting and retries
// layered on top by Generator.
package llm
