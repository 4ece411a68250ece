package ir

import "github.com/andyyu2004/gqls/pkg/syntax"

// lowerDirectivesOf lowers node's `directives` child, if present. Shared
// by skeleton-phase lowering (type/type-extension-level directives) and
// body-phase lowering (field/arg/enum-value-level directives) — directive
// applications are purely syntactic, so both phases lower them the same
// way.
func lowerDirectivesOf(node *syntax.Node, text string) []DirectiveApplication {
	directivesNode := syntax.ChildOfKind(node, syntax.KindDirectives)
	if directivesNode == nil {
		return nil
	}
	var apps []DirectiveApplication
	for _, d := range syntax.ChildrenOfKind(directivesNode, syntax.KindDirective) {
		if app, ok := lowerDirective(d, text); ok {
			apps = append(apps, app)
		}
	}
	return apps
}

func lowerDirective(node *syntax.Node, text string) (DirectiveApplication, bool) {
	nameNode := syntax.NameNode(node)
	if nameNode == nil {
		return DirectiveApplication{}, false
	}
	return DirectiveApplication{
		Range:     syntax.NodeRange(node),
		Name:      NewDirectiveName(nameNode, text),
		Arguments: lowerArguments(node, text),
	}, true
}
