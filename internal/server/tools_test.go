package server

import (
	"testing"
)

func TestGetToolDefinitions(t *testing.T) {
	tools := GetToolDefinitions()

	want := []string{"sdf_compute", "sdf_sample", "image_dimensions"}
	if len(tools) != len(want) {
		t.Fatalf("got %d tools, want %d", len(tools), len(want))
	}

	toolMap := make(map[string]Tool)
	for _, tool := range tools {
		toolMap[tool.Name] = tool
	}
	for _, name := range want {
		if _, ok := toolMap[name]; !ok {
			t.Errorf("Expected tool %s not found", name)
		}
	}
}

func TestToolDefinitions_Structure(t *testing.T) {
	for _, tool := range GetToolDefinitions() {
		t.Run(tool.Name, func(t *testing.T) {
			if tool.Description == "" {
				t.Error("Tool description is empty")
			}
			if tool.InputSchema["type"] != "object" {
				t.Errorf("InputSchema type: got %v, want 'object'", tool.InputSchema["type"])
			}

			props, ok := tool.InputSchema["properties"].(map[string]interface{})
			if !ok {
				t.Fatal("InputSchema properties should be a map")
			}
			required, ok := tool.InputSchema["required"].([]string)
			if !ok {
				t.Fatal("InputSchema required should be a []string")
			}
			for _, r := range required {
				if _, ok := props[r]; !ok {
					t.Errorf("required property %q not described", r)
				}
			}
		})
	}
}

func TestToolDefinitions_SharedFieldArguments(t *testing.T) {
	tools := GetToolDefinitions()
	for _, tool := range tools[:2] {
		props := tool.InputSchema["properties"].(map[string]interface{})
		for _, name := range []string{"path", "threshold", "invert", "blur_radius", "precision", "region"} {
			if _, ok := props[name]; !ok {
				t.Errorf("%s: missing %q", tool.Name, name)
			}
		}
	}

	// The two tools get separate property maps.
	compute := tools[0].InputSchema["properties"].(map[string]interface{})
	sample := tools[1].InputSchema["properties"].(map[string]interface{})
	if _, ok := sample["clamp_low"]; ok {
		t.Error("sdf_sample leaked sdf_compute properties")
	}
	if _, ok := compute["points"]; ok {
		t.Error("sdf_compute leaked sdf_sample properties")
	}
}

func TestHandleToolsList(t *testing.T) {
	s := newTestServer(t)
	resp := s.handleToolsList(&MCPRequest{JSONRPC: "2.0", ID: 1, Method: "tools/list"})

	result, ok := resp.Result.(map[string]interface{})
	if !ok {
		t.Fatal("Result should be a map")
	}
	tools, ok := result["tools"].([]Tool)
	if !ok || len(tools) != 3 {
		t.Errorf("tools: got %v", result["tools"])
	}
}
