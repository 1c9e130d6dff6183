package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// fieldProperties returns the schema properties shared by the tools that
// compute a distance field.
func fieldProperties() map[string]interface{} {
	return map[string]interface{}{
		"path": map[string]interface{}{
			"type":        "string",
			"description": "Absolute path to the image file",
		},
		"threshold": map[string]interface{}{
			"type":        "integer",
			"minimum":     0,
			"maximum":     255,
			"description": "Luminance cutoff. Pixels brighter than this are inside the shape. Defaults to the server setting (127).",
		},
		"invert": map[string]interface{}{
			"type":        "boolean",
			"description": "Treat dark pixels as inside (for dark shapes on a light background)",
			"default":     false,
		},
		"blur_radius": map[string]interface{}{
			"type":        "number",
			"description": "Gaussian blur radius applied before thresholding. 0 disables it.",
			"default":     0,
		},
		"precision": map[string]interface{}{
			"type":        "string",
			"enum":        []string{"f32", "f16"},
			"description": "Distance storage: f32 (full) or f16 (half precision). Defaults to the server setting.",
		},
		"region": map[string]interface{}{
			"type":        "object",
			"description": "Optional crop applied before thresholding; (x1,y1) inclusive, (x2,y2) exclusive",
			"properties": map[string]interface{}{
				"x1": map[string]interface{}{"type": "integer"},
				"y1": map[string]interface{}{"type": "integer"},
				"x2": map[string]interface{}{"type": "integer"},
				"y2": map[string]interface{}{"type": "integer"},
			},
			"required": []string{"x1", "y1", "x2", "y2"},
		},
	}
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	compute := fieldProperties()
	compute["clamp_low"] = map[string]interface{}{
		"type":        "number",
		"description": "Signed distance mapped to black. Requires clamp_high. Without a clamp the field's own min and max are used.",
	}
	compute["clamp_high"] = map[string]interface{}{
		"type":        "number",
		"description": "Signed distance mapped to white. Must be greater than clamp_low.",
	}
	compute["scale"] = map[string]interface{}{
		"type":        "number",
		"description": "Optional scale factor for the rendered image. Default 1.0",
		"default":     1.0,
	}
	compute["colorize"] = map[string]interface{}{
		"type":        "boolean",
		"description": "Render through the configured inside/edge/outside palette instead of grayscale",
		"default":     false,
	}
	compute["output_path"] = map[string]interface{}{
		"type":        "string",
		"description": "Optional path to also write the rendered image to; the format follows the extension",
	}

	sample := fieldProperties()
	sample["points"] = map[string]interface{}{
		"type": "array",
		"items": map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"x":     map[string]interface{}{"type": "integer"},
				"y":     map[string]interface{}{"type": "integer"},
				"label": map[string]interface{}{"type": "string"},
			},
			"required": []string{"x", "y"},
		},
		"description": "Pixels to sample, in field coordinates (relative to region when one is given)",
	}

	return []Tool{
		{
			Name:        "sdf_compute",
			Description: "Threshold an image into a shape and compute its signed distance field (negative inside, positive outside). Returns the distance range and the field rendered as base64-encoded PNG.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": compute,
				"required":   []string{"path"},
			},
		},
		{
			Name:        "sdf_sample",
			Description: "Compute the signed distance field of a thresholded image and report the distance, inside flag and nearest boundary point at each requested pixel.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": sample,
				"required":   []string{"path", "points"},
			},
		},
		{
			Name:        "image_dimensions",
			Description: "Get the width and height of an image file.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
				},
				"required": []string{"path"},
			},
		},
	}
}

// handleToolsList returns the list of available tools
func (s *Server) handleToolsList(req *MCPRequest) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"tools": GetToolDefinitions(),
		},
	}
}
