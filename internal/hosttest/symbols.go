// Copyright 2026 Oliver Eikemeier. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package hosttest

import "fillmore-labs.com/subanalyzers/host"

// symbol holds the properties common to all symbols.
type symbol struct {
	self       host.Symbol
	kind       host.SymbolKind
	name, id   string
	containing *Type
	original   host.Symbol

	virtual, abstract, override, sealed, static bool

	access host.Accessibility
	decls  []host.Node
}

func (s *symbol) Kind() host.SymbolKind             { return s.kind }
func (s *symbol) Name() string                      { return s.name }
func (s *symbol) ID() string                        { return s.id }
func (s *symbol) IsVirtual() bool                   { return s.virtual }
func (s *symbol) IsAbstract() bool                  { return s.abstract }
func (s *symbol) IsOverride() bool                  { return s.override }
func (s *symbol) IsSealed() bool                    { return s.sealed }
func (s *symbol) IsStatic() bool                    { return s.static }
func (s *symbol) Accessibility() host.Accessibility { return s.access }
func (s *symbol) DeclaringSyntax() []host.Node      { return s.decls }

func (s *symbol) ContainingType() host.NamedType {
	if s.containing == nil {
		return nil
	}

	return s.containing
}

func (s *symbol) OriginalDefinition() host.Symbol {
	if s.original != nil {
		return s.original
	}

	return s.self
}

// Option configures a symbol.
type Option func(*symbol)

// Virtual marks a member virtual.
func Virtual() Option { return func(s *symbol) { s.virtual = true } }

// Abstract marks a member abstract.
func Abstract() Option { return func(s *symbol) { s.abstract = true } }

// Override marks a member as override.
func Override() Option { return func(s *symbol) { s.override = true } }

// Sealed marks a member sealed.
func Sealed() Option { return func(s *symbol) { s.sealed = true } }

// Static marks a member static.
func Static() Option { return func(s *symbol) { s.static = true } }

// Access sets the declared accessibility, default is public.
func Access(a host.Accessibility) Option { return func(s *symbol) { s.access = a } }

// Declared sets the declaration nodes.
func Declared(decls ...*Node) Option {
	return func(s *symbol) {
		for _, d := range decls {
			s.decls = append(s.decls, d)
		}
	}
}

// ID overrides the generated stable identifier.
func ID(id string) Option { return func(s *symbol) { s.id = id } }

// Type is a named type symbol.
type Type struct {
	symbol

	typeKind     host.TypeKind
	metadataName string
	interfaces   []*Type
	members      []host.Symbol
	impls        map[host.Symbol]host.Symbol
}

var _ host.NamedType = (*Type)(nil)

// NewType creates a named type.
func NewType(kind host.TypeKind, metadataName string, opts ...Option) *Type {
	name := metadataName
	for i := len(name) - 1; i >= 0; i-- {
		if name[i] == '.' {
			name = name[i+1:]

			break
		}
	}

	t := &Type{typeKind: kind, metadataName: metadataName, impls: make(map[host.Symbol]host.Symbol)}
	t.symbol = symbol{kind: host.SymbolNamedType, name: name, id: "T:" + metadataName, access: host.Public}
	t.self = t

	for _, opt := range opts {
		opt(&t.symbol)
	}

	return t
}

// NewClass creates a class type.
func NewClass(metadataName string, opts ...Option) *Type {
	return NewType(host.TypeClass, metadataName, opts...)
}

// NewInterface creates an interface type.
func NewInterface(metadataName string, opts ...Option) *Type {
	return NewType(host.TypeInterface, metadataName, opts...)
}

func (t *Type) TypeKind() host.TypeKind { return t.typeKind }
func (t *Type) MetadataName() string    { return t.metadataName }

func (t *Type) Members() []host.Symbol { return t.members }

func (t *Type) AllInterfaces() []host.NamedType {
	var all []host.NamedType

	seen := make(map[*Type]bool)

	var add func(ifaces []*Type)
	add = func(ifaces []*Type) {
		for _, i := range ifaces {
			if seen[i] {
				continue
			}

			seen[i] = true
			all = append(all, i)

			add(i.interfaces)
		}
	}

	add(t.interfaces)

	return all
}

// FindImplementationForInterfaceMember returns the explicitly registered
// implementation, or else the member of the same kind and name.
func (t *Type) FindImplementationForInterfaceMember(member host.Symbol) host.Symbol {
	if impl, ok := t.impls[member]; ok {
		return impl
	}

	for _, m := range t.members {
		if m.Kind() == member.Kind() && m.Name() == member.Name() {
			return m
		}
	}

	return nil
}

// Implements adds interfaces to the type.
func (t *Type) Implements(ifaces ...*Type) *Type {
	t.interfaces = append(t.interfaces, ifaces...)

	return t
}

// Implement registers impl as the implementation of an interface member.
func (t *Type) Implement(member, impl host.Symbol) {
	t.impls[member] = impl
}

// Method declares a method on the type. Members of interfaces are abstract.
func (t *Type) Method(name string, opts ...Option) *Method {
	m := &Method{methodKind: host.MethodOrdinary}
	m.symbol = t.member(m, host.SymbolMethod, "M:", name)
	m.self = m

	for _, opt := range opts {
		opt(&m.symbol)
	}

	t.members = append(t.members, m)

	return m
}

// Property declares a property on the type. Members of interfaces are abstract.
func (t *Type) Property(name string, opts ...Option) *Property {
	p := &Property{}
	p.symbol = t.member(p, host.SymbolProperty, "P:", name)
	p.self = p

	for _, opt := range opts {
		opt(&p.symbol)
	}

	t.members = append(t.members, p)

	return p
}

// Indexer declares an indexer on the type.
func (t *Type) Indexer(opts ...Option) *Property {
	p := t.Property("this[]", opts...)
	p.indexer = true

	return p
}

// Field declares a field on the type.
func (t *Type) Field(name string, opts ...Option) *Field {
	f := &Field{}
	f.symbol = t.member(f, host.SymbolField, "F:", name)
	f.self = f

	for _, opt := range opts {
		opt(&f.symbol)
	}

	t.members = append(t.members, f)

	return f
}

func (t *Type) member(self host.Symbol, kind host.SymbolKind, prefix, name string) symbol {
	return symbol{
		self:       self,
		kind:       kind,
		name:       name,
		id:         prefix + t.metadataName + "." + name,
		containing: t,
		abstract:   t.typeKind == host.TypeInterface,
		access:     host.Public,
	}
}

// Method is a method symbol.
type Method struct {
	symbol

	methodKind      host.MethodKind
	reducedFrom     *Method
	constructedFrom *Method
	typeArgs        []host.Type
	params          []host.Parameter
	extension       bool
}

var _ host.Method = (*Method)(nil)

func (m *Method) MethodKind() host.MethodKind  { return m.methodKind }
func (m *Method) TypeArguments() []host.Type   { return m.typeArgs }
func (m *Method) Parameters() []host.Parameter { return m.params }
func (m *Method) IsExtensionMethod() bool      { return m.extension }

func (m *Method) ReducedFrom() host.Method {
	if m.reducedFrom == nil {
		return nil
	}

	return m.reducedFrom
}

func (m *Method) ConstructedFrom() host.Method {
	if m.constructedFrom == nil {
		return m
	}

	return m.constructedFrom
}

// Extension marks a static method as extension method.
func (m *Method) Extension() *Method {
	m.static, m.extension = true, true

	return m
}

// WithKind sets the method kind.
func (m *Method) WithKind(kind host.MethodKind) *Method {
	m.methodKind = kind

	return m
}

// WithID overrides the generated stable identifier.
func (m *Method) WithID(id string) *Method {
	m.id = id

	return m
}

// Construct returns the method instantiated with type arguments.
func (m *Method) Construct(typeArgs ...host.Type) *Method {
	c := *m
	c.self = &c
	c.typeArgs = typeArgs
	c.constructedFrom = m
	c.original = nil

	return &c
}

// Reduced returns the reduced form of an extension method, as bound to
// calls "receiver.M()".
func (m *Method) Reduced() *Method {
	r := *m
	r.self = &r
	r.methodKind = host.MethodReducedExtension
	r.reducedFrom = m
	r.static = false

	return &r
}

// Property is a property or indexer symbol.
type Property struct {
	symbol

	indexer bool
}

var _ host.Property = (*Property)(nil)

func (p *Property) IsIndexer() bool { return p.indexer }

// Field is a field symbol.
type Field struct {
	symbol
}

var _ host.Symbol = (*Field)(nil)
