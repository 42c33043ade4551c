/*
 * MUCAL
 *
 * Copyright 2020 Matthias Ladkau. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package parser

import (
	"bytes"
	"fmt"
	"text/template"

	"devt.de/krotik/common/errorutil"
)

/*
Map of AST nodes corresponding to formula syntax
*/
var prettyPrinterMap map[string]*template.Template

func init() {
	prettyPrinterMap = map[string]*template.Template{

		// Constant terminals

		NodeTRUE:  template.Must(template.New(NodeTRUE).Parse("true")),
		NodeFALSE: template.Must(template.New(NodeFALSE).Parse("false")),

		// NodeRECVAR - Special case (handled in code)
		// NodeACTION - Special case (handled in code)
		// NodeDIAMOND - Special case (handled in code)
		// NodeBOX - Special case (handled in code)

		// Boolean operators

		NodeAND + "_2": template.Must(template.New(NodeAND).Parse("({{.c1}}&&{{.c2}})")),
		NodeOR + "_2":  template.Must(template.New(NodeOR).Parse("({{.c1}}||{{.c2}})")),
		NodeNOT + "_1": template.Must(template.New(NodeNOT).Parse("!{{.c1}}")),

		// Fixpoint binders

		NodeMU + "_2": template.Must(template.New(NodeMU).Parse("mu{{.c1}}.{{.c2}}")),
		NodeNU + "_2": template.Must(template.New(NodeNU).Parse("nu{{.c1}}.{{.c2}}")),
	}
}

/*
PrettyPrint produces the concrete syntax of a given formula AST.
*/
func PrettyPrint(ast *ASTNode) (string, error) {
	var visit func(ast *ASTNode) (string, error)

	visit = func(ast *ASTNode) (string, error) {
		var buf bytes.Buffer

		numChildren := len(ast.Children)

		tempKey := ast.Name
		tempParam := make(map[string]string)

		// First pretty print children

		if numChildren > 0 {
			for i, child := range ast.Children {
				res, err := visit(child)
				if err != nil {
					return "", err
				}

				tempParam[fmt.Sprint("c", i+1)] = res
			}

			tempKey += fmt.Sprint("_", len(tempParam))
		}

		// Handle special cases - children are still pretty printed

		switch ast.Name {

		case NodeRECVAR, NodeACTION:
			return ast.Token.Val, nil

		case NodeDIAMOND:
			return fmt.Sprintf("<%v>%v", ast.Token.Val, tempParam["c1"]), nil

		case NodeBOX:
			return fmt.Sprintf("[%v]%v", ast.Token.Val, tempParam["c1"]), nil
		}

		// Retrieve the template

		temp, ok := prettyPrinterMap[tempKey]
		if !ok {
			return "", fmt.Errorf("Could not find template for %v (tempkey: %v)",
				ast.Name, tempKey)
		}

		// Use the template to format the node

		errorutil.AssertOk(temp.Execute(&buf, tempParam))

		return buf.String(), nil
	}

	return visit(ast)
}
