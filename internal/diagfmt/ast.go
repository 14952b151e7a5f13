package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"rill/internal/ast"
	"rill/internal/source"
)

// ASTNodeOutput — сериализуемый узел дерева с тегом kind.
// Одна и та же структура питает и текстовый дамп, и JSON.
type ASTNodeOutput struct {
	Kind     string          `json:"kind"`
	Text     string          `json:"text,omitempty"`
	Span     source.Span     `json:"span"`
	Fields   map[string]any  `json:"fields,omitempty"`
	Children []ASTNodeOutput `json:"children,omitempty"`
}

// FormatASTPretty печатает дерево файла в отступном виде с ветками
// '├─'/'└─'. Спаны разворачиваются в line:col, когда fs задан.
func FormatASTPretty(w io.Writer, f *ast.File, interner *source.Interner, fs *source.FileSet) error {
	d := &astDumper{interner: interner, fs: fs}
	root := d.fileNode(f)
	renderTreeWith(w, root, makeSpanFormatter(fs))
	return nil
}

// BuildASTOutput строит сериализуемое дерево файла без печати; нужен
// командам, которые собирают несколько файлов в один JSON-документ.
func BuildASTOutput(f *ast.File, interner *source.Interner, fs *source.FileSet) *ASTNodeOutput {
	d := &astDumper{interner: interner, fs: fs}
	root := d.fileNode(f)
	return &root
}

// FormatASTJSON сериализует дерево файла в JSON с kind-тегами узлов.
func FormatASTJSON(w io.Writer, f *ast.File, interner *source.Interner) error {
	d := &astDumper{interner: interner}
	root := d.fileNode(f)

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(root)
}

type astDumper struct {
	interner *source.Interner
	fs       *source.FileSet
}

func (d *astDumper) lookup(sym source.StringID) string {
	if s, ok := d.interner.Lookup(sym); ok && s != "" {
		return s
	}
	return "_"
}

func (d *astDumper) nameText(n ast.Name) string {
	return d.lookup(n.Sym)
}

func (d *astDumper) pathText(p ast.Path) string {
	parts := make([]string, len(p.Segments))
	for i, seg := range p.Segments {
		parts[i] = d.nameText(seg)
	}
	return strings.Join(parts, ".")
}

// typeText восстанавливает текст типа из дерева.
func (d *astDumper) typeText(t ast.Type) string {
	switch n := t.(type) {
	case nil:
		return "<missing>"
	case *ast.PrimaryType:
		s := d.pathText(n.Path)
		if len(n.Args) > 0 {
			args := make([]string, len(n.Args))
			for i, arg := range n.Args {
				args[i] = d.typeText(arg)
			}
			s += "[" + strings.Join(args, ", ") + "]"
		}
		return s
	case *ast.ReferenceType:
		if n.Mut {
			return "&mut " + d.typeText(n.Inner)
		}
		return "&" + d.typeText(n.Inner)
	case *ast.ArrayType:
		return "[" + d.typeText(n.Inner) + "]"
	case *ast.OptionType:
		return d.typeText(n.Inner) + "?"
	case *ast.NegatedTraitType:
		return "!" + d.typeText(n.Inner)
	default:
		return "<unknown>"
	}
}

func (d *astDumper) fileNode(f *ast.File) ASTNodeOutput {
	node := ASTNodeOutput{Kind: "File", Span: f.Span}
	if d.fs != nil {
		srcFile := d.fs.Get(f.Span.File)
		node.Text = srcFile.FormatPath("auto", d.fs.BaseDir())
	}
	if len(f.Docstring) > 0 {
		node.Fields = map[string]any{"docstring": f.Docstring}
	}
	for _, item := range f.Items {
		node.Children = append(node.Children, d.itemNode(item))
	}
	return node
}

func (d *astDumper) itemNode(doc ast.Documented) ASTNodeOutput {
	node := d.bareItemNode(doc.Item)
	if len(doc.Doc) > 0 {
		if node.Fields == nil {
			node.Fields = make(map[string]any)
		}
		node.Fields["doc"] = doc.Doc
	}
	return node
}

func (d *astDumper) bareItemNode(it ast.Item) ASTNodeOutput {
	switch n := it.(type) {
	case *ast.Import:
		node := ASTNodeOutput{Kind: "Import", Span: n.Span, Text: d.pathText(n.Path)}
		if n.Alias != nil {
			node.Fields = map[string]any{"alias": d.nameText(*n.Alias)}
		}
		return node

	case *ast.Function:
		node := ASTNodeOutput{Kind: "Function", Span: n.Span, Text: d.nameText(n.Signature.Name)}
		node.Fields = d.signatureFields(n.Signature)
		if n.HasBody {
			node.Children = append(node.Children, d.blockNode(n.Body))
		}
		return node

	case *ast.Enum:
		node := ASTNodeOutput{Kind: "Enum", Span: n.Span, Text: d.nameText(n.Name)}
		if n.Vis.Public {
			node.Fields = map[string]any{"public": true}
		}
		for _, v := range n.Variants {
			variant := ASTNodeOutput{Kind: "Variant", Span: v.Span, Text: d.nameText(v.Name)}
			if len(v.Doc) > 0 {
				variant.Fields = map[string]any{"doc": v.Doc}
			}
			node.Children = append(node.Children, variant)
		}
		return node

	case *ast.Struct:
		node := ASTNodeOutput{Kind: "Struct", Span: n.Span, Text: d.nameText(n.Name)}
		node.Fields = d.declFields(n.Vis, n.Generics, n.Where)
		for _, m := range n.Members {
			member := ASTNodeOutput{
				Kind: "Member",
				Span: m.Span,
				Text: d.nameText(m.Name) + ": " + d.typeText(m.Type),
			}
			fields := make(map[string]any)
			if m.Vis.Public {
				fields["public"] = true
			}
			if m.Mut {
				fields["mutable"] = true
			}
			if len(m.Doc) > 0 {
				fields["doc"] = m.Doc
			}
			if len(fields) > 0 {
				member.Fields = fields
			}
			node.Children = append(node.Children, member)
		}
		return node

	case *ast.Trait:
		node := ASTNodeOutput{Kind: "Trait", Span: n.Span, Text: d.nameText(n.Name)}
		node.Fields = d.declFields(n.Vis, n.Generics, n.Where)
		for _, m := range n.Members {
			node.Children = append(node.Children, d.itemNode(m))
		}
		return node

	case *ast.Impl:
		node := ASTNodeOutput{Kind: "Impl", Span: n.Span, Text: d.typeText(n.Type)}
		fields := d.declFields(n.Vis, n.Generics, n.Where)
		if n.Trait != nil {
			if fields == nil {
				fields = make(map[string]any)
			}
			fields["trait"] = d.typeText(n.Trait)
		}
		node.Fields = fields
		for _, m := range n.Members {
			node.Children = append(node.Children, d.itemNode(m))
		}
		return node

	case *ast.TypeAlias:
		node := ASTNodeOutput{Kind: "TypeAlias", Span: n.Span, Text: d.nameText(n.Name)}
		fields := d.declFields(n.Vis, n.Generics, nil)
		if n.Aliased != nil {
			if fields == nil {
				fields = make(map[string]any)
			}
			fields["aliased"] = d.typeText(n.Aliased)
		}
		node.Fields = fields
		return node

	default:
		return ASTNodeOutput{Kind: "Unknown", Span: ast.ItemSpan(it)}
	}
}

func (d *astDumper) signatureFields(sig ast.FunctionSignature) map[string]any {
	fields := d.declFields(sig.Vis, sig.Generics, sig.Where)
	if fields == nil {
		fields = make(map[string]any)
	}
	if len(sig.Params) > 0 {
		params := make([]string, len(sig.Params))
		for i, p := range sig.Params {
			s := d.nameText(p.Name) + ": " + d.typeText(p.Type)
			if p.Default != nil {
				s += " = " + d.exprSummary(p.Default)
			}
			params[i] = s
		}
		fields["params"] = params
	}
	if sig.Return != nil {
		fields["return"] = d.typeText(sig.Return)
	}
	if len(fields) == 0 {
		return nil
	}
	return fields
}

func (d *astDumper) declFields(vis ast.Visibility, generics []ast.GenericParam, where []ast.WherePredicate) map[string]any {
	fields := make(map[string]any)
	if vis.Public {
		fields["public"] = true
	}
	if len(generics) > 0 {
		gens := make([]string, len(generics))
		for i, g := range generics {
			s := d.nameText(g.Name)
			if g.Constraint != nil {
				s += ": " + d.typeText(g.Constraint)
			}
			gens[i] = s
		}
		fields["generics"] = gens
	}
	if len(where) > 0 {
		preds := make([]string, len(where))
		for i, p := range where {
			preds[i] = d.typeText(p.Type) + ": " + d.typeText(p.Constraint)
		}
		fields["where"] = preds
	}
	if len(fields) == 0 {
		return nil
	}
	return fields
}

func (d *astDumper) blockNode(b *ast.Block) ASTNodeOutput {
	node := ASTNodeOutput{Kind: "Block", Span: b.Span}
	for _, st := range b.Statements {
		node.Children = append(node.Children, d.stmtNode(st))
	}
	return node
}

func (d *astDumper) stmtNode(st ast.Statement) ASTNodeOutput {
	switch n := st.(type) {
	case *ast.Var:
		text := d.nameText(n.Name)
		if n.Type != nil {
			text += ": " + d.typeText(n.Type)
		}
		node := ASTNodeOutput{Kind: "Var", Span: n.Span, Text: text}
		if n.Mut {
			node.Fields = map[string]any{"mutable": true}
		}
		if n.Value != nil {
			node.Children = append(node.Children, d.exprNode(n.Value))
		}
		return node

	case *ast.Return:
		node := ASTNodeOutput{Kind: "Return", Span: n.Span}
		if n.Value != nil {
			node.Children = append(node.Children, d.exprNode(n.Value))
		}
		return node

	case *ast.Defer:
		node := ASTNodeOutput{Kind: "Defer", Span: n.Span}
		if n.Call != nil {
			node.Children = append(node.Children, d.exprNode(n.Call))
		}
		return node

	case *ast.ExprStatement:
		node := ASTNodeOutput{Kind: "ExprStatement", Span: n.Span}
		if !n.HasSemicolon {
			node.Fields = map[string]any{"tail": true}
		}
		node.Children = append(node.Children, d.exprNode(n.Expr))
		return node

	default:
		return ASTNodeOutput{Kind: "Unknown", Span: ast.StmtSpan(st)}
	}
}

func (d *astDumper) exprNode(e ast.Expr) ASTNodeOutput {
	switch n := e.(type) {
	case *ast.IntLiteral:
		return ASTNodeOutput{Kind: "Int", Span: n.Span, Text: strconv.FormatUint(n.Value, 10)}
	case *ast.FloatLiteral:
		return ASTNodeOutput{Kind: "Float", Span: n.Span, Text: strconv.FormatFloat(n.Value, 'g', -1, 64)}
	case *ast.StringLiteral:
		return ASTNodeOutput{Kind: "String", Span: n.Span, Text: n.Value}
	case *ast.CharLiteral:
		return ASTNodeOutput{Kind: "Char", Span: n.Span, Text: string(n.Value)}
	case *ast.BoolLiteral:
		return ASTNodeOutput{Kind: "Bool", Span: n.Span, Text: strconv.FormatBool(n.Value)}
	case *ast.NameExpr:
		return ASTNodeOutput{Kind: "Name", Span: n.Span, Text: d.lookup(n.Sym)}

	case *ast.ArrayExpr:
		node := ASTNodeOutput{Kind: "Array", Span: n.Span}
		for _, el := range n.Elements {
			node.Children = append(node.Children, d.exprNode(el))
		}
		return node

	case *ast.ParenExpr:
		return ASTNodeOutput{Kind: "Paren", Span: n.Span, Children: []ASTNodeOutput{d.exprNode(n.Inner)}}

	case *ast.Unary:
		node := ASTNodeOutput{Kind: "Unary", Span: n.Span, Text: n.Op.String()}
		if n.Postfix {
			node.Fields = map[string]any{"postfix": true}
		}
		node.Children = []ASTNodeOutput{d.exprNode(n.Operand)}
		return node

	case *ast.Binary:
		return ASTNodeOutput{
			Kind:     "Binary",
			Span:     n.Span,
			Text:     n.Op.String(),
			Children: []ASTNodeOutput{d.exprNode(n.Left), d.exprNode(n.Right)},
		}

	case *ast.Call:
		node := ASTNodeOutput{Kind: "Call", Span: n.Span}
		node.Children = append(node.Children, d.exprNode(n.Callee))
		for _, arg := range n.Args {
			node.Children = append(node.Children, d.exprNode(arg))
		}
		return node

	case *ast.Property:
		return ASTNodeOutput{
			Kind:     "Property",
			Span:     n.Span,
			Text:     d.nameText(n.Name),
			Children: []ASTNodeOutput{d.exprNode(n.Target)},
		}

	case *ast.TypeArguments:
		args := make([]string, len(n.Args))
		for i, arg := range n.Args {
			args[i] = d.typeText(arg)
		}
		return ASTNodeOutput{
			Kind:     "TypeArguments",
			Span:     n.Span,
			Text:     "[" + strings.Join(args, ", ") + "]",
			Children: []ASTNodeOutput{d.exprNode(n.Expr)},
		}

	case *ast.Cast:
		return ASTNodeOutput{
			Kind:     "Cast",
			Span:     n.Span,
			Text:     d.typeText(n.Type),
			Children: []ASTNodeOutput{d.exprNode(n.Expr)},
		}

	case *ast.If:
		node := ASTNodeOutput{Kind: "If", Span: n.Span}
		for _, arm := range n.Blocks {
			armNode := ASTNodeOutput{Kind: "Arm", Span: arm.Span}
			armNode.Children = append(armNode.Children, d.exprNode(arm.Cond), d.blockNode(arm.Body))
			node.Children = append(node.Children, armNode)
		}
		if n.Else != nil {
			elseNode := ASTNodeOutput{Kind: "Else", Span: n.Else.Span}
			elseNode.Children = append(elseNode.Children, d.blockNode(n.Else))
			node.Children = append(node.Children, elseNode)
		}
		return node

	case *ast.While:
		node := ASTNodeOutput{Kind: "While", Span: n.Span}
		node.Children = append(node.Children, d.exprNode(n.Cond))
		if n.Body != nil {
			node.Children = append(node.Children, d.blockNode(n.Body))
		}
		return node

	default:
		return ASTNodeOutput{Kind: "Unknown", Span: ast.ExprSpan(e)}
	}
}

// exprSummary — однострочная сводка выражения для встраивания в подписи
// (значения по умолчанию параметров и т.п.).
func (d *astDumper) exprSummary(e ast.Expr) string {
	node := d.exprNode(e)
	if node.Text != "" {
		return fmt.Sprintf("%s(%s)", node.Kind, node.Text)
	}
	return node.Kind
}
