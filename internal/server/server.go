// Package server wires all MCP components and creates the server instance.
//
// This is the composition root (DIP): it creates concrete implementations
// and injects them into the tools that depend on abstractions. No business
// logic lives here — only wiring.
package server

import (
	"fmt"
	"log/slog"

	"github.com/mark3labs/mcp-go/server"

	"github.com/pandamcp/panda/internal/enhance"
	"github.com/pandamcp/panda/internal/framework"
	"github.com/pandamcp/panda/internal/journal"
	"github.com/pandamcp/panda/internal/sequence"
	"github.com/pandamcp/panda/internal/tools"
)

// Version is set at build time via ldflags.
var Version = "dev"

// Config holds the server wiring options.
type Config struct {
	// DataDir overrides the journal's default data directory.
	DataDir string
	// DisableJournal skips journal initialization entirely.
	DisableJournal bool
}

// New creates and configures the MCP server with all tools registered.
// This is the single place where all dependencies are resolved.
//
// The returned cleanup function closes the journal's database connection
// and must be called on shutdown (typically via defer). It is always
// non-nil and safe to call even if journal init failed.
func New(cfg Config) (*server.MCPServer, func(), error) {
	// --- Create shared dependencies ---

	registry := framework.NewRegistry()
	for _, d := range []framework.Domain{framework.Planning, framework.Auditing} {
		if err := registry.Load(d); err != nil {
			return nil, noop, fmt.Errorf("loading %s frameworks: %w", d, err)
		}
	}

	suggester := framework.NewSuggester(registry)
	planEngine := enhance.NewPlanEngine(registry, suggester)
	auditEngine := enhance.NewAuditEngine(registry, suggester)
	executor := sequence.NewExecutor(planEngine, auditEngine)

	// --- Journal (optional) ---
	//
	// The journal is an independent subsystem: if it fails to initialize,
	// the enhancement tools continue working. We log a warning and pass a
	// nil store — every tool degrades gracefully without it.

	cleanup := noop
	var jrnl *journal.Store
	if !cfg.DisableJournal {
		jcfg := journal.DefaultConfig()
		if cfg.DataDir != "" {
			jcfg.DataDir = cfg.DataDir
		}
		store, err := journal.New(jcfg)
		if err != nil {
			slog.Warn("journal disabled", "error", err)
		} else {
			jrnl = store
			cleanup = func() {
				if err := store.Close(); err != nil {
					slog.Warn("journal close failed", "error", err)
				}
			}
		}
	}

	// --- Create the MCP server ---

	s := server.NewMCPServer(
		"panda",
		Version,
		server.WithToolCapabilities(true),
		server.WithRecovery(),
		server.WithInstructions(serverInstructions()),
	)

	// --- Register enhancement tools ---

	planTool := tools.NewPlanTool(planEngine, jrnl)
	s.AddTool(planTool.Definition(), planTool.Handle)

	auditTool := tools.NewAuditTool(auditEngine, jrnl)
	s.AddTool(auditTool.Definition(), auditTool.Handle)

	sequenceTool := tools.NewSequenceTool(executor, jrnl)
	s.AddTool(sequenceTool.Definition(), sequenceTool.Handle)

	frameworksTool := tools.NewFrameworksTool(registry)
	s.AddTool(frameworksTool.Definition(), frameworksTool.Handle)

	statsTool := tools.NewStatsTool(jrnl)
	s.AddTool(statsTool.Definition(), statsTool.Handle)

	return s, cleanup, nil
}

// noop is a no-op cleanup function used as the default when the journal
// is disabled or hasn't been initialized.
func noop() {}

// serverInstructions returns the system instructions that tell the AI
// how to use PandA effectively.
func serverInstructions() string {
	return `You have access to PandA, a Plan-and-Audit prompt enhancement MCP server.

## What PandA Does

PandA tools are ENHANCEMENT tools, not reasoning tools. They take your
planning thought or audit objective and return a structured thinking
framework — guiding questions, a work structure, a phase methodology.
YOU do the actual reasoning; PandA keeps it disciplined.

The server is STATELESS. It never remembers earlier calls. Anything
you want carried across steps (previous_steps, evidence_collected)
must be resent on every call.

## Planning (panda_plan)

Use panda_plan when breaking down a problem, designing a system, or
structuring any multi-step work.

1. Call panda_plan with your current thought
2. Omit 'framework' on the first call — the response includes
   suggested_frameworks ranked for your thought; the top one is applied
3. Apply the returned questions and structure to your reasoning
4. On later steps, resend previous_steps (step, framework, insight per
   entry) so the progress summary stays accurate
5. Switch frameworks freely between steps — pass an explicit
   'framework' id to override the suggestion

## Auditing (panda_audit)

Use panda_audit when reviewing, verifying, or assessing something
against a standard — code, security posture, processes, finances.

Audits walk a fixed phase cycle:
planning → information_gathering → testing_evaluation → analysis_reporting

1. Call panda_audit with your objective; omit 'phase' to start at planning
2. Apply the phase's methodology, collect evidence as you go
3. Advance by passing the next_phase value from the response, resending
   ALL evidence_collected so far
4. The final analysis_reporting phase includes the reporting structure —
   use it to shape your findings

## Sequences (panda_sequence)

Use panda_sequence to run several plan/audit steps as one pipeline with
a shared context. Each step's output merges into the context (later
steps win on conflicts) and is available as step_N_result. A failing
step stops the run and returns the partial trace — inspect failed_step
and the failure record to recover.

## Discovery

- panda_frameworks lists every registered framework with descriptions
- panda_stats shows which tools and frameworks get used most

## Important Rules

- Never treat a framework's questions as answers — they are prompts
  for YOUR analysis
- Always resend carried state; the server keeps none
- Prefer the suggested framework unless you have a reason not to;
  explicit beats implicit when you know what you need`
}
