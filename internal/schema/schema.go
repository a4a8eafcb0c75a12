// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package schema generates JSON Schema documents from yaml-tagged structs.
package schema

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"slices"
	"strings"

	"github.com/matt-FFFFFF/whence/internal/catalog"
)

const (
	draft       = "https://json-schema.org/draft/2020-12/schema"
	descTag     = "docdesc"
	yamlTag     = "yaml"
	omitEmpty   = "omitempty"
	typeString  = "string"
	typeInteger = "integer"
	typeNumber  = "number"
	typeBoolean = "boolean"
	typeArray   = "array"
	typeObject  = "object"
)

var (
	// ErrNotStruct is returned when a schema is requested for a non-struct type.
	ErrNotStruct = errors.New("expected struct type")
	// ErrWriteSchema is returned when the schema cannot be written.
	ErrWriteSchema = errors.New("failed to write schema")
)

// Field is one property of an object schema.
type Field struct {
	Name        string `json:"-"`
	Type        string `json:"type"`
	Description string `json:"description,omitempty"`
	Required    bool   `json:"-"`
	// Items describes array elements.
	Items *Schema `json:"items,omitempty"`
}

// Schema is a JSON Schema object.
type Schema struct {
	Draft                string            `json:"$schema,omitempty"`
	Title                string            `json:"title,omitempty"`
	Description          string            `json:"description,omitempty"`
	Type                 string            `json:"type"`
	Properties           map[string]*Field `json:"properties,omitempty"`
	Required             []string          `json:"required,omitempty"`
	AdditionalProperties *bool             `json:"additionalProperties,omitempty"`
}

// Generator builds schemas from struct definitions.
type Generator struct{}

// NewGenerator creates a new Generator.
func NewGenerator() *Generator {
	return &Generator{}
}

// Generate returns the schema for def, which must be a struct or a pointer to one.
// Fields are named by their yaml tag and are required unless tagged omitempty.
func (g *Generator) Generate(def any) (*Schema, error) {
	return g.objectSchema(reflect.TypeOf(def))
}

// Catalog returns the schema for YAML tool catalogs.
func (g *Generator) Catalog() (*Schema, error) {
	s, err := g.Generate(catalog.Catalog{})
	if err != nil {
		return nil, err
	}

	s.Draft = draft
	s.Title = "whence tool catalog"
	s.Description = "Named executable lookups for whence"

	return s, nil
}

// WriteCatalogSchema writes the catalog schema as indented JSON.
func (g *Generator) WriteCatalogSchema(w io.Writer) error {
	s, err := g.Catalog()
	if err != nil {
		return err
	}

	b, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return errors.Join(ErrWriteSchema, err)
	}

	if _, err := fmt.Fprintln(w, string(b)); err != nil {
		return errors.Join(ErrWriteSchema, err)
	}

	return nil
}

func (g *Generator) objectSchema(t reflect.Type) (*Schema, error) {
	if t == nil {
		return nil, ErrNotStruct
	}

	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	if t.Kind() != reflect.Struct {
		return nil, fmt.Errorf("%w, got %s", ErrNotStruct, t.Kind())
	}

	fields, err := g.extractFields(t)
	if err != nil {
		return nil, err
	}

	closed := false
	s := &Schema{
		Type:                 typeObject,
		Properties:           make(map[string]*Field, len(fields)),
		AdditionalProperties: &closed,
	}

	for _, f := range fields {
		s.Properties[f.Name] = f
		if f.Required {
			s.Required = append(s.Required, f.Name)
		}
	}

	slices.Sort(s.Required)

	return s, nil
}

func (g *Generator) extractFields(t reflect.Type) ([]*Field, error) {
	var fields []*Field

	for i := range t.NumField() {
		field := t.Field(i)

		if !field.IsExported() {
			continue
		}

		if field.Anonymous {
			embedded, err := g.extractFields(field.Type)
			if err != nil {
				return nil, err
			}

			fields = append(fields, embedded...)

			continue
		}

		f, err := g.fieldToSchemaField(field)
		if err != nil {
			return nil, err
		}

		if f != nil {
			fields = append(fields, f)
		}
	}

	return fields, nil
}

func (g *Generator) fieldToSchemaField(field reflect.StructField) (*Field, error) {
	tag := field.Tag.Get(yamlTag)
	if tag == "-" {
		return nil, nil //nolint:nilnil
	}

	name := strings.ToLower(field.Name)

	parts := strings.Split(tag, ",")
	if parts[0] != "" {
		name = parts[0]
	}

	f := &Field{
		Name:        name,
		Type:        schemaType(field.Type),
		Description: field.Tag.Get(descTag),
		Required:    !slices.Contains(parts[1:], omitEmpty),
	}

	if f.Type == typeArray {
		elem := field.Type.Elem()
		if elem.Kind() == reflect.Struct || (elem.Kind() == reflect.Ptr && elem.Elem().Kind() == reflect.Struct) {
			items, err := g.objectSchema(elem)
			if err != nil {
				return nil, err
			}

			f.Items = items
		} else {
			f.Items = &Schema{Type: schemaType(elem)}
		}
	}

	return f, nil
}

// schemaType converts a Go type to a JSON schema type.
func schemaType(t reflect.Type) string {
	switch t.Kind() {
	case reflect.String:
		return typeString
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return typeInteger
	case reflect.Float32, reflect.Float64:
		return typeNumber
	case reflect.Bool:
		return typeBoolean
	case reflect.Slice, reflect.Array:
		return typeArray
	case reflect.Map, reflect.Struct:
		return typeObject
	case reflect.Ptr:
		return schemaType(t.Elem())
	default:
		return typeString
	}
}
