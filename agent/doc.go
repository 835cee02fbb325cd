// Package agent contains the ReAct orchestrator and its supporting pieces:
//
//  1. Prompt construction - the fixed system message enumerating tools and
//     the mandated JSON output schema (prompt.go)
//  2. Action parsing - tolerant two-stage recovery of a structured decision
//     from unreliable model text (action.go)
//  3. The loop itself - iterate, reason, dispatch, observe, terminate
//     (agent.go)
//
// Design principles:
//   - No hidden state: each Run owns its transcript; the Agent and the tool
//     registry are immutable after construction
//   - Absorb, don't abort: every failure inside an iteration becomes an
//     observation the model can react to; only a missing backend at
//     construction time is fatal
//   - Pure where it matters: name normalization and action parsing are pure
//     functions so they can be tested without any backend
package agent
