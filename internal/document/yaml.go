package document

import (
	"fmt"

	"github.com/zclconf/go-cty/cty"
	"gopkg.in/yaml.v3"
)

// YAML renders the document as a YAML document.
func (d Document) YAML() (string, error) {
	node, err := toNode(d.Value())
	if err != nil {
		return "", err
	}
	b, err := yaml.Marshal(node)
	if err != nil {
		return "", fmt.Errorf("marshal yaml: %w", err)
	}
	return string(b), nil
}

func toNode(v cty.Value) (*yaml.Node, error) {
	if v.IsNull() {
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}, nil
	}
	if !v.IsKnown() {
		return nil, fmt.Errorf("cannot render unknown value of type %s", v.Type().FriendlyName())
	}

	ty := v.Type()
	switch {
	case ty == cty.String:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: v.AsString()}, nil
	case ty == cty.Bool:
		s := "false"
		if v.True() {
			s = "true"
		}
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!bool", Value: s}, nil
	case ty == cty.Number:
		f := v.AsBigFloat()
		tag := "!!float"
		if f.IsInt() {
			tag = "!!int"
		}
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: f.Text('f', -1)}, nil
	case ty.IsObjectType() || ty.IsMapType():
		node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		for it := v.ElementIterator(); it.Next(); {
			k, elem := it.Element()
			child, err := toNode(elem)
			if err != nil {
				return nil, err
			}
			node.Content = append(node.Content,
				&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: k.AsString()},
				child,
			)
		}
		return node, nil
	case ty.IsListType() || ty.IsTupleType() || ty.IsSetType():
		node := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for it := v.ElementIterator(); it.Next(); {
			_, elem := it.Element()
			child, err := toNode(elem)
			if err != nil {
				return nil, err
			}
			node.Content = append(node.Content, child)
		}
		return node, nil
	default:
		return nil, fmt.Errorf("cannot render value of type %s", ty.FriendlyName())
	}
}
