package parser

import (
	"github.com/pkg/errors"

	"github.com/cumunisp/cumunisp/internal/ast"
)

// treeParser builds an ast.Node tree from a token stream.
type treeParser struct {
	toks []Token
	pos  int
}

// Parse tokenizes and parses source text into a root ast.Node whose
// children are the top-level expressions, matching spec.md §6's
// "root or sexpr" node shape.
func Parse(source string) (*ast.Node, error) {
	toks, err := tokenize(source)
	if err != nil {
		return nil, errors.Wrap(err, "tokenize")
	}

	p := &treeParser{toks: toks}
	root := &ast.Node{Tag: ast.RootTag}
	for !p.atEOF() {
		child, err := p.readExpr()
		if err != nil {
			return nil, errors.Wrap(err, "parse")
		}
		root.Children = append(root.Children, child)
	}
	return root, nil
}

func (p *treeParser) readExpr() (*ast.Node, error) {
	if p.atEOF() {
		return nil, errors.New("unexpected end of input")
	}

	tok := p.peek()
	switch tok.Type {
	case LPAREN:
		return p.readSeq(LPAREN, RPAREN, "sexpr")
	case LBRACE:
		return p.readSeq(LBRACE, RBRACE, "qexpr")
	case NUMBER:
		p.advance()
		return &ast.Node{Tag: "number", Contents: tok.Contents}, nil
	case SYMBOL:
		p.advance()
		return &ast.Node{Tag: "symbol", Contents: tok.Contents}, nil
	case STRING:
		p.advance()
		return &ast.Node{Tag: "string", Contents: tok.Contents}, nil
	case RPAREN, RBRACE:
		return nil, errors.Errorf("unexpected closing bracket at line %d, col %d", tok.Line, tok.Col)
	default:
		return nil, errors.Errorf("unexpected token %v at line %d, col %d", tok.Type, tok.Line, tok.Col)
	}
}

func (p *treeParser) readSeq(open, closeTok TokenType, tag string) (*ast.Node, error) {
	p.advance() // consume opener
	node := &ast.Node{Tag: tag}
	for !p.atEOF() && p.peek().Type != closeTok {
		child, err := p.readExpr()
		if err != nil {
			return nil, err
		}
		node.Children = append(node.Children, child)
	}
	if p.atEOF() {
		return nil, errors.New("unclosed expression")
	}
	p.advance() // consume closer
	return node, nil
}

func (p *treeParser) peek() Token {
	if p.atEOF() {
		return Token{Type: EOF}
	}
	return p.toks[p.pos]
}

func (p *treeParser) advance() Token {
	tok := p.peek()
	p.pos++
	return tok
}

func (p *treeParser) atEOF() bool {
	return p.pos >= len(p.toks) || p.toks[p.pos].Type == EOF
}
