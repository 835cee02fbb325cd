// Package model defines the provider-agnostic abstractions for interacting
// with reasoning models inside AgentPro.
//
// Core goals:
//   - Keep request/response shapes minimal and transport independent
//   - Express the structured-output hint (ForceJSON) without binding the
//     loop to any provider's response_format mechanics
//   - Facilitate lightweight mocking for tests (Mock)
//
// Providers (e.g. OpenAI, Anthropic) implement the Model interface from this
// package so the agent loop remains decoupled from vendor SDKs.
package model
