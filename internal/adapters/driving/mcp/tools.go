package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/drills/internal/core/domain"
)

// EvaluateInput is the input schema for the evaluate tool.
type EvaluateInput struct {
	Left      string `json:"left" jsonschema:"the first operand"`
	Operation string `json:"operation" jsonschema:"one of + - * /"`
	Right     string `json:"right" jsonschema:"the second operand"`
	Variant   string `json:"variant,omitempty" jsonschema:"int or float (default: configured variant)"`
}

// EvaluateOutput is the output schema for the evaluate tool.
type EvaluateOutput struct {
	ID      string `json:"id"`
	Variant string `json:"variant"`
	Result  string `json:"result,omitempty"`
	Outcome string `json:"outcome"`
	Line    string `json:"line"`
}

// GreetInput is the input schema for the greet tool.
type GreetInput struct {
	Name string `json:"name" jsonschema:"the name to greet"`
	Age  string `json:"age" jsonschema:"age in years, a non-negative integer"`
}

// GreetOutput is the output schema for the greet tool.
type GreetOutput struct {
	Name string `json:"name"`
	Age  uint32 `json:"age"`
	Line string `json:"line"`
}

// TransformInput is the input schema for the transform_sentence tool.
type TransformInput struct {
	Sentence string `json:"sentence" jsonschema:"the sentence to reverse and upper-case"`
}

// TransformOutput is the output schema for the transform_sentence tool.
type TransformOutput struct {
	Original    string `json:"original"`
	Transformed string `json:"transformed"`
	Line        string `json:"line"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "evaluate",
		Description: "Evaluate a binary arithmetic expression (a op b) with integer or floating point numbers",
	}, s.handleEvaluate)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "greet",
		Description: "Greet someone by name and age",
	}, s.handleGreet)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "transform_sentence",
		Description: "Reverse a sentence and upper-case it",
	}, s.handleTransform)
}

// handleEvaluate handles the evaluate tool invocation.
// Division by zero, unknown operators and overflow are reported in the
// output; malformed numbers fail the call.
func (s *Server) handleEvaluate(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input EvaluateInput,
) (*mcp.CallToolResult, EvaluateOutput, error) {
	if err := s.throttle(ctx); err != nil {
		return nil, EvaluateOutput{}, err
	}

	evaluation, err := s.ports.Calculator.Evaluate(
		ctx, domain.Variant(input.Variant), input.Left, input.Operation, input.Right,
	)
	if evaluation == nil {
		return nil, EvaluateOutput{}, err
	}

	return nil, EvaluateOutput{
		ID:      evaluation.ID,
		Variant: evaluation.Variant.String(),
		Result:  evaluation.Result,
		Outcome: string(evaluation.Outcome),
		Line:    evaluation.Line(),
	}, nil
}

// handleGreet handles the greet tool invocation.
func (s *Server) handleGreet(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input GreetInput,
) (*mcp.CallToolResult, GreetOutput, error) {
	if err := s.throttle(ctx); err != nil {
		return nil, GreetOutput{}, err
	}

	greeting, err := s.ports.Greeter.Greet(input.Name, input.Age)
	if err != nil {
		return nil, GreetOutput{}, err
	}

	return nil, GreetOutput{
		Name: greeting.Name,
		Age:  greeting.Age,
		Line: greeting.String(),
	}, nil
}

// handleTransform handles the transform_sentence tool invocation.
func (s *Server) handleTransform(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input TransformInput,
) (*mcp.CallToolResult, TransformOutput, error) {
	if err := s.throttle(ctx); err != nil {
		return nil, TransformOutput{}, err
	}

	sentence := s.ports.Manipulator.Transform(input.Sentence)

	return nil, TransformOutput{
		Original:    sentence.Original,
		Transformed: sentence.Transformed,
		Line:        sentence.String(),
	}, nil
}
