package bacnet

import (
	"strconv"
	"strings"
)

// ObjectTypeNames maps the standard ASHRAE object type names to their
// enumerated codes (spec §3, grounded on bacpypes3's ObjectType table).
// Vendor-specific proprietary codes run 128-1023 and are rendered by
// decimal value when not present here.
var ObjectTypeNames = map[string]uint32{
	"accessCredential": 32, "accessDoor": 30, "accessPoint": 33,
	"accessRights": 34, "accessUser": 35, "accessZone": 36,
	"accumulator": 23, "alertEnrollment": 52, "analogInput": 0,
	"analogOutput": 1, "analogValue": 2, "auditLog": 61,
	"auditReporter": 62, "averaging": 18, "binaryInput": 3,
	"binaryLightingOutput": 55, "binaryOutput": 4, "binaryValue": 5,
	"bitstringValue": 39, "calendar": 6, "channel": 53,
	"characterstringValue": 40, "command": 7, "credentialDataInput": 37,
	"datePatternValue": 41, "dateValue": 42, "datetimePatternValue": 43,
	"datetimeValue": 44, "device": 8, "elevatorGroup": 57,
	"escalator": 58, "eventEnrollment": 9, "eventLog": 25, "file": 10,
	"globalGroup": 26, "group": 11, "integerValue": 45,
	"largeAnalogValue": 46, "lifeSafetyPoint": 21, "lifeSafetyZone": 22,
	"lift": 59, "lightingOutput": 54, "loadControl": 28, "loop": 12,
	"multiStateInput": 13, "multiStateOutput": 14, "multiStateValue": 19,
	"networkSecurity": 38, "networkPort": 56, "notificationClass": 15,
	"notificationForwarder": 51, "octetstringValue": 47,
	"positiveIntegerValue": 48, "program": 16, "pulseConverter": 24,
	"schedule": 17, "staging": 60, "structuredView": 29,
	"timePatternValue": 49, "timeValue": 50, "timer": 31, "trendLog": 20,
	"trendLogMultiple": 27,
}

const objectInstanceMax = 0x3FFFFF // 2^22 - 1

// ObjectIdentifier is a (type, instance) pair packed on the wire as a
// single uint32: type<<22 | instance, see spec §3.
type ObjectIdentifier struct {
	Type     uint32
	Instance uint32
	schema   *Schema
}

func (o ObjectIdentifier) ElementSchema() *Schema { return o.schema }

// CastObjectIdentifierTuple validates the instance bound and wraps the pair.
func CastObjectIdentifierTuple(objType, instance uint32, schema *Schema) (ObjectIdentifier, error) {
	const op = "ObjectIdentifier.Cast"
	if instance > objectInstanceMax {
		return ObjectIdentifier{}, newValueError(op, "instance out of range")
	}
	return ObjectIdentifier{Type: objType, Instance: instance, schema: schema}, nil
}

// CastObjectIdentifierUint unpacks a single packed uint32 value.
func CastObjectIdentifierUint(packed uint32, schema *Schema) ObjectIdentifier {
	return ObjectIdentifier{Type: packed >> 22, Instance: packed & objectInstanceMax, schema: schema}
}

// CastObjectIdentifierString parses "type,instance" or "type:instance",
// where type may be either a decimal code or an ObjectTypeNames key in
// camelCase or ASN.1 kebab form.
func CastObjectIdentifierString(s string, schema *Schema) (ObjectIdentifier, error) {
	const op = "ObjectIdentifier.Cast"

	var parts []string
	switch {
	case strings.Contains(s, ","):
		parts = strings.SplitN(s, ",", 2)
	case strings.Contains(s, ":"):
		parts = strings.SplitN(s, ":", 2)
	default:
		return ObjectIdentifier{}, newValueError(op, "'type,instance' or 'type:instance' expected")
	}
	if len(parts) != 2 {
		return ObjectIdentifier{}, newValueError(op, "'type,instance' or 'type:instance' expected")
	}

	objType, err := parseObjectType(strings.TrimSpace(parts[0]))
	if err != nil {
		return ObjectIdentifier{}, err
	}
	instance, err := strconv.ParseUint(strings.TrimSpace(parts[1]), 10, 32)
	if err != nil {
		return ObjectIdentifier{}, newValueError(op, "invalid instance")
	}
	return CastObjectIdentifierTuple(objType, uint32(instance), schema)
}

func parseObjectType(s string) (uint32, error) {
	const op = "ObjectIdentifier.Cast"
	if v, ok := ObjectTypeNames[s]; ok {
		return v, nil
	}
	for camel, v := range ObjectTypeNames {
		if ToASN1Name(camel) == s {
			return v, nil
		}
	}
	v, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, newValueError(op, "unknown object type: "+s)
	}
	return uint32(v), nil
}

// TypeName renders the object type in ASN.1 kebab form when known,
// falling back to the decimal code (e.g. for vendor-proprietary types).
func (o ObjectIdentifier) TypeName() string {
	for camel, v := range ObjectTypeNames {
		if v == o.Type {
			return ToASN1Name(camel)
		}
	}
	return strconv.FormatUint(uint64(o.Type), 10)
}

// Packed returns the single-uint32 wire value: type<<22 | instance.
func (o ObjectIdentifier) Packed() uint32 {
	return (o.Type << 22) | o.Instance
}

// String renders "type,instance".
func (o ObjectIdentifier) String() string {
	return o.TypeName() + "," + strconv.FormatUint(uint64(o.Instance), 10)
}

func (o ObjectIdentifier) Encode() *TagList {
	packed := o.Packed()
	data := []byte{byte(packed >> 24), byte(packed >> 16), byte(packed >> 8), byte(packed)}
	tag := appOrContextTag(o.schema, TagNumberObjectIdentifier, data)
	return NewTagList([]Tag{tag})
}

// DecodeObjectIdentifier pops one tag and unpacks its four raw payload octets.
func DecodeObjectIdentifier(l *TagList, schema *Schema) (ObjectIdentifier, error) {
	const op = "ObjectIdentifier.Decode"

	tag, err := expectTag(op, l, schema, TagNumberObjectIdentifier)
	if err != nil {
		return ObjectIdentifier{}, err
	}
	if len(tag.Data) != 4 {
		return ObjectIdentifier{}, newInvalidTag(op, "invalid tag length")
	}

	packed := uint32(tag.Data[0])<<24 | uint32(tag.Data[1])<<16 | uint32(tag.Data[2])<<8 | uint32(tag.Data[3])
	return CastObjectIdentifierUint(packed, schema), nil
}
