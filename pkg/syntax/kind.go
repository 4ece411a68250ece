package syntax

// NodeKind names a tree-sitter-graphql grammar rule by its ts_symbol_names
// string. These mirror the grammar's generated parser.c symbol table, so
// they're plain strings rather than an enum: the grammar can add rules
// without requiring every caller to be recompiled against a new set.
const (
	KindSourceFile = "source_file"
	KindItem       = "item"

	KindTypeDefinition = "type_definition"
	KindTypeExtension  = "type_extension"

	KindObjectTypeDefinition    = "object_type_definition"
	KindObjectTypeExtension     = "object_type_extension"
	KindInterfaceTypeDefinition = "interface_type_definition"
	KindScalarTypeDefinition    = "scalar_type_definition"
	KindEnumTypeDefinition      = "enum_type_definition"
	KindUnionTypeDefinition     = "union_type_definition"
	KindInputObjectTypeDefinition = "input_object_type_definition"

	KindDirectiveDefinition = "directive_definition"
	KindDirectiveLocations  = "directive_locations"
	KindDirectiveLocation   = "directive_location"
	KindDirectives          = "directives"
	KindDirective           = "directive"
	KindDirectiveName       = "directive_name"
	KindArguments           = "arguments"
	KindArgument            = "argument"

	KindImplementsInterfaces = "implements_interfaces"

	KindFieldsDefinition      = "fields_definition"
	KindFieldDefinition       = "field_definition"
	KindInputFieldsDefinition = "input_fields_definition"
	KindInputValueDefinition  = "input_value_definition"
	KindArgumentsDefinition   = "arguments_definition"

	KindEnumValuesDefinition = "enum_values_definition"
	KindEnumValueDefinition  = "enum_value_definition"
	KindEnumValue            = "enum_value"

	KindUnionMemberTypes = "union_member_types"

	KindType        = "type"
	KindNamedType   = "named_type"
	KindListType    = "list_type"
	KindNonNullType = "non_null_type"

	KindDefaultValue = "default_value"
	KindValue        = "value"
	KindStringValue  = "string_value"
	KindIntValue     = "int_value"
	KindFloatValue   = "float_value"
	KindBooleanValue = "boolean_value"
	KindNullValue    = "null_value"
	KindListValue    = "list_value"
	KindObjectValue  = "object_value"
	KindObjectField  = "object_field"

	KindName = "name"
)
