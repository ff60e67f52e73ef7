package http

import (
	"encoding/json"

	"github.com/gofiber/fiber/v2"

	"github.com/localhub/localhub/internal/core/domain"
)

// The agent-facing surface is a single POST endpoint speaking the tool
// protocol: initialize, tools/list, and tools/call with a named tool and
// its arguments. Arguments are decoded once here into typed inputs; the
// core never sees raw payloads.

const (
	protocolVersion = "2024-11-05"
	serverName      = "LocalHub MCP Server"
	serverVersion   = "1.0.0"
)

type toolRequest struct {
	Method string      `json:"method"`
	Params *toolParams `json:"params,omitempty"`
}

type toolParams struct {
	Name      string          `json:"name"`
	Arguments json.RawMessage `json:"arguments"`
}

// toolContent is the text payload of a successful tool call.
type toolContent struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

type toolCallResult struct {
	Content []toolContent `json:"content"`
}

// ToolsHandler dispatches tool protocol requests.
func ToolsHandler(deps *Dependencies) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req toolRequest
		if err := c.BodyParser(&req); err != nil {
			return errBadRequest(c, "malformed request body")
		}

		switch req.Method {
		case "initialize":
			return c.JSON(fiber.Map{
				"result": fiber.Map{
					"protocolVersion": protocolVersion,
					"capabilities": fiber.Map{
						"tools":     fiber.Map{},
						"resources": fiber.Map{},
					},
					"serverInfo": fiber.Map{
						"name":    serverName,
						"version": serverVersion,
					},
				},
			})

		case "tools/list":
			return c.JSON(fiber.Map{
				"result": fiber.Map{"tools": allTools},
			})

		case "tools/call":
			if req.Params == nil || req.Params.Name == "" {
				return errBadRequest(c, "tool name is required")
			}
			return callTool(c, deps, req.Params.Name, req.Params.Arguments)

		default:
			return errBadRequest(c, "unknown method: "+req.Method)
		}
	}
}

// callTool decodes the arguments for the named tool and invokes it.
func callTool(c *fiber.Ctx, deps *Dependencies, name string, args json.RawMessage) error {
	var (
		result any
		err    error
	)

	switch name {
	case "search_places":
		var in domain.SearchInput
		if err := decodeArgs(args, &in); err != nil {
			return errBadRequest(c, err.Error())
		}
		result, err = deps.Search.Search(c.Context(), in)

	case "get_place_details":
		var in struct {
			PlaceID string `json:"place_id"`
		}
		if err := decodeArgs(args, &in); err != nil {
			return errBadRequest(c, err.Error())
		}
		result, err = deps.Places.Details(c.Context(), in.PlaceID)

	case "get_directions":
		var in domain.DirectionsInput
		if err := decodeArgs(args, &in); err != nil {
			return errBadRequest(c, err.Error())
		}
		result, err = deps.Directions.Route(c.Context(), in)

	case "compose_map_resource":
		var in domain.MapResourceInput
		if err := decodeArgs(args, &in); err != nil {
			return errBadRequest(c, err.Error())
		}
		result, err = deps.Maps.Compose(in)

	default:
		return errNotFound(c, "tool not found: "+name)
	}

	if err != nil {
		return mapDomainError(c, err)
	}

	text, err := json.Marshal(result)
	if err != nil {
		return errInternal(c, "encode result: "+err.Error())
	}
	return c.JSON(fiber.Map{
		"result": toolCallResult{
			Content: []toolContent{{Type: "text", Text: string(text)}},
		},
	})
}

func decodeArgs(args json.RawMessage, out any) error {
	if len(args) == 0 {
		args = []byte("{}")
	}
	return json.Unmarshal(args, out)
}
