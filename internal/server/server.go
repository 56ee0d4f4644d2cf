// Package server provides the MCP server implementation for decomment.
package server

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/zap"

	"github.com/seanhalberthal/decomment/internal/exercise"
	"github.com/seanhalberthal/decomment/internal/filter"
	"github.com/seanhalberthal/decomment/internal/stripper"
	"github.com/seanhalberthal/decomment/internal/types"
)

// strip holds the stripper instance for tool handlers.
var strip *stripper.Stripper

// Run starts the MCP server with the given stripper.
func Run(s *stripper.Stripper, log *zap.SugaredLogger) {
	strip = s

	server := mcp.NewServer(
		&mcp.Implementation{
			Name:    "decomment",
			Version: types.Version,
		},
		nil,
	)

	registerTools(server)

	log.Infow("starting MCP server", "version", types.Version, "transport", "stdio")
	if err := server.Run(context.Background(), &mcp.StdioTransport{}); err != nil {
		log.Fatalw("MCP server stopped", "error", err)
	}
}

func registerTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "decomment_status",
		Description: "Get version, filter states, configured source extensions and available exercises",
	}, handleStatus)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "decomment_strip_text",
		Description: "Remove // and /* */ comments from text, leaving quoted strings untouched",
	}, handleStripText)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "decomment_strip_path",
		Description: "Remove comments from a source file or every source file in a directory",
	}, handleStripPath)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "decomment_exercise",
		Description: "Run demonstration exercises and return their console output",
	}, handleExercise)
}

// Tool input/output types

type statusInput struct{}

type statusOutput struct {
	types.StatusResponse
}

type stripTextInput struct {
	Text string `json:"text" jsonschema:"description=Text to remove comments from"`
}

type stripTextOutput struct {
	types.TextResult
}

type stripPathInput struct {
	Path      string `json:"path" jsonschema:"description=Path to a source file or directory"`
	Recursive bool   `json:"recursive,omitempty" jsonschema:"description=Descend into subdirectories"`
	Write     bool   `json:"write,omitempty" jsonschema:"description=Rewrite changed files in place"`
}

type stripPathOutput struct {
	types.StripResult
}

type exerciseInput struct {
	Names []string `json:"names,omitempty" jsonschema:"description=Exercises to run; all when empty"`
}

type exerciseOutput struct {
	types.ExerciseResult
}

// Tool handlers

func handleStatus(ctx context.Context, ss *mcp.ServerSession, params *mcp.CallToolParamsFor[statusInput]) (*mcp.CallToolResultFor[statusOutput], error) {
	status := statusOutput{
		StatusResponse: types.StatusResponse{
			Version:    types.Version,
			States:     filter.StateNames(),
			Extensions: strip.Config().Extensions,
			Exercises:  exercise.Names(),
		},
	}

	return &mcp.CallToolResultFor[statusOutput]{StructuredContent: status}, nil
}

func handleStripText(ctx context.Context, ss *mcp.ServerSession, params *mcp.CallToolParamsFor[stripTextInput]) (*mcp.CallToolResultFor[stripTextOutput], error) {
	result := strip.StripText(params.Arguments.Text)
	return &mcp.CallToolResultFor[stripTextOutput]{StructuredContent: stripTextOutput{TextResult: result}}, nil
}

func handleStripPath(ctx context.Context, ss *mcp.ServerSession, params *mcp.CallToolParamsFor[stripPathInput]) (*mcp.CallToolResultFor[stripPathOutput], error) {
	input := params.Arguments
	if input.Path == "" {
		return &mcp.CallToolResultFor[stripPathOutput]{IsError: true}, errors.New("path is required")
	}

	result, err := strip.Strip(ctx, stripper.Options{
		Path:          input.Path,
		Recursive:     input.Recursive,
		Write:         input.Write,
		IncludeOutput: !input.Write,
	})
	if err != nil {
		return &mcp.CallToolResultFor[stripPathOutput]{IsError: true}, err
	}

	return &mcp.CallToolResultFor[stripPathOutput]{StructuredContent: stripPathOutput{StripResult: *result}}, nil
}

func handleExercise(ctx context.Context, ss *mcp.ServerSession, params *mcp.CallToolParamsFor[exerciseInput]) (*mcp.CallToolResultFor[exerciseOutput], error) {
	names := params.Arguments.Names
	if unknown := exercise.Unknown(names); len(unknown) == len(names) && len(names) > 0 {
		return &mcp.CallToolResultFor[exerciseOutput]{IsError: true}, fmt.Errorf("no such exercise: %s", strings.Join(unknown, ", "))
	}

	var out strings.Builder
	outcomes := exercise.Run(&out, names)

	result := types.ExerciseResult{
		Outcomes: make([]types.ExerciseOutcome, 0, len(outcomes)),
		Unknown:  exercise.Unknown(names),
	}
	for _, o := range outcomes {
		outcome := types.ExerciseOutcome{Name: o.Name}
		if o.Err != nil {
			outcome.Error = o.Err.Error()
		}
		result.Outcomes = append(result.Outcomes, outcome)
	}
	result.Output = out.String()

	return &mcp.CallToolResultFor[exerciseOutput]{StructuredContent: exerciseOutput{ExerciseResult: result}}, nil
}
