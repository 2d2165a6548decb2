package toml

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Parser parses TOML tokens into a map[string]any
// Supported: key = value, [table] headers (one level), strings, integers, floats
// including nan/inf, booleans, and arrays of those
type Parser struct {
	lexer     *Lexer
	curToken  Token
	peekToken Token
	root      map[string]any
	current   map[string]any
}

func NewParser(input []byte) *Parser {
	p := &Parser{
		lexer: NewLexer(input),
		root:  make(map[string]any),
	}
	p.nextToken()
	p.nextToken()
	p.current = p.root
	return p
}

func (p *Parser) nextToken() {
	p.curToken = p.peekToken
	p.peekToken = p.lexer.NextToken()

	for p.peekToken.Type == TokenComment {
		p.peekToken = p.lexer.NextToken()
	}
}

func (p *Parser) Parse() (map[string]any, error) {
	for p.curToken.Type != TokenEOF {
		if p.curToken.Type == TokenNewline {
			p.nextToken()
			continue
		}
		if err := p.parseStatement(); err != nil {
			return nil, err
		}
	}
	return p.root, nil
}

func (p *Parser) parseStatement() error {
	switch p.curToken.Type {
	case TokenLBracket:
		return p.parseTableHeader()
	case TokenIdent, TokenString:
		if err := p.parseKeyValuePair(); err != nil {
			return err
		}
		if p.curToken.Type != TokenNewline && p.curToken.Type != TokenEOF {
			return fmt.Errorf("expected newline after value at line %d, got %s", p.curToken.Line, p.curToken.String())
		}
		return nil
	case TokenError:
		return fmt.Errorf("lexing error line %d: %s", p.curToken.Line, p.curToken.Literal)
	default:
		return fmt.Errorf("unexpected token line %d: %s", p.curToken.Line, p.curToken.String())
	}
}

// parseTableHeader handles [name]; tables are children of the root only
func (p *Parser) parseTableHeader() error {
	p.nextToken() // [
	if p.curToken.Type != TokenIdent && p.curToken.Type != TokenString {
		return fmt.Errorf("expected table name at line %d, got %s", p.curToken.Line, p.curToken.String())
	}
	name := p.curToken.Literal
	p.nextToken()
	if p.curToken.Type != TokenRBracket {
		return fmt.Errorf("expected closing bracket for table at line %d", p.curToken.Line)
	}
	p.nextToken() // ]

	if existing, ok := p.root[name]; ok {
		if _, isTable := existing.(map[string]any); isTable {
			return fmt.Errorf("table [%s] defined twice", name)
		}
		return fmt.Errorf("key conflict: %s is not a table", name)
	}
	table := make(map[string]any)
	p.root[name] = table
	p.current = table
	return nil
}

func (p *Parser) parseKeyValuePair() error {
	key := p.curToken.Literal
	p.nextToken()

	if p.curToken.Type != TokenEqual {
		return fmt.Errorf("expected '=' after key at line %d, got %s", p.curToken.Line, p.curToken.String())
	}
	p.nextToken()

	val, err := p.parseValue()
	if err != nil {
		return fmt.Errorf("key %q: %w", key, err)
	}

	if _, exists := p.current[key]; exists {
		return fmt.Errorf("duplicate key %s at line %d", key, p.curToken.Line)
	}
	p.current[key] = val
	return nil
}

func (p *Parser) parseValue() (any, error) {
	tok := p.curToken
	switch tok.Type {
	case TokenString:
		p.nextToken()
		return tok.Literal, nil
	case TokenInteger:
		val, err := strconv.ParseInt(strings.ReplaceAll(tok.Literal, "_", ""), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid integer %s at line %d", tok.Literal, tok.Line)
		}
		p.nextToken()
		return int(val), nil
	case TokenFloat:
		val, err := parseFloat(tok.Literal)
		if err != nil {
			return nil, fmt.Errorf("invalid float %s at line %d", tok.Literal, tok.Line)
		}
		p.nextToken()
		return val, nil
	case TokenBool:
		p.nextToken()
		return tok.Literal == "true", nil
	case TokenLBracket:
		return p.parseArray()
	}
	return nil, fmt.Errorf("unexpected value token %s at line %d", tok.String(), tok.Line)
}

func parseFloat(lit string) (float64, error) {
	switch lit {
	case "nan", "+nan", "-nan":
		return math.NaN(), nil
	case "inf", "+inf":
		return math.Inf(1), nil
	case "-inf":
		return math.Inf(-1), nil
	}
	return strconv.ParseFloat(strings.ReplaceAll(lit, "_", ""), 64)
}

func (p *Parser) parseArray() ([]any, error) {
	p.nextToken() // [
	arr := make([]any, 0)

	for {
		for p.curToken.Type == TokenNewline {
			p.nextToken()
		}
		if p.curToken.Type == TokenRBracket {
			break
		}

		val, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		arr = append(arr, val)

		for p.curToken.Type == TokenNewline {
			p.nextToken()
		}
		if p.curToken.Type == TokenComma {
			p.nextToken()
			continue
		}
		if p.curToken.Type != TokenRBracket {
			return nil, fmt.Errorf("expected comma or closing bracket in array at line %d", p.curToken.Line)
		}
	}
	p.nextToken() // ]
	return arr, nil
}
