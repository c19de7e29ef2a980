package bacnet

import (
	"fmt"
	"sync"
)

// ObjectClassInfo describes, for one registered object type, the
// property type name for each of its properties (just enough for
// CheckReliability to compare against a schedule's declared datatype;
// spec §4.8 keeps a full object database out of scope).
type ObjectClassInfo struct {
	PropertyTypes map[string]string
}

// VendorInfo is a process-wide, read-mostly record of a vendor's
// registered object classes, grounded on
// original_source/bacpypes3/vendor.py's VendorInfo.
type VendorInfo struct {
	VendorIdentifier uint32
	ObjectClasses    map[uint32]ObjectClassInfo
}

// GetObjectClass looks up a registered object type, falling back to
// the ASHRAE default registry exactly as the original's
// get_object_class does.
func (v *VendorInfo) GetObjectClass(objectType uint32) (ObjectClassInfo, bool) {
	if info, ok := v.ObjectClasses[objectType]; ok {
		return info, true
	}
	if v.VendorIdentifier != 0 {
		if info, ok := ashraeVendorInfo.ObjectClasses[objectType]; ok {
			return info, true
		}
	}
	return ObjectClassInfo{}, false
}

// GetPropertyType looks up the declared type name of a property on a
// registered object class.
func (c ObjectClassInfo) GetPropertyType(propertyIdentifier string) (string, bool) {
	t, ok := c.PropertyTypes[propertyIdentifier]
	return t, ok
}

var (
	vendorMu     sync.Mutex
	vendorInfo   = map[uint32]*VendorInfo{}
	vendorFrozen bool

	ashraeVendorInfo = &VendorInfo{VendorIdentifier: 0, ObjectClasses: map[uint32]ObjectClassInfo{}}
)

func init() {
	vendorInfo[0] = ashraeVendorInfo
}

// RegisterVendor adds a new vendor's object-class table to the
// process-wide registry. Registering after the first LookupVendor
// call is a programming error: the registry is treated as frozen once
// any lookup has been served, matching spec §9's "Global state"
// design note.
func RegisterVendor(vendorIdentifier uint32, classes map[uint32]ObjectClassInfo) error {
	const op = "RegisterVendor"

	vendorMu.Lock()
	defer vendorMu.Unlock()

	if vendorFrozen {
		return newRuntimeError(op, fmt.Sprintf("vendor registry frozen after first lookup: %d", vendorIdentifier))
	}
	if _, exists := vendorInfo[vendorIdentifier]; exists {
		return newRuntimeError(op, fmt.Sprintf("vendor identifier already registered: %d", vendorIdentifier))
	}

	vendorInfo[vendorIdentifier] = &VendorInfo{VendorIdentifier: vendorIdentifier, ObjectClasses: classes}
	return nil
}

// LookupVendor resolves a vendor identifier, falling back to the
// ASHRAE default (vendor id 0) for anything unregistered, matching
// get_vendor_info. The first call freezes the registry against
// further registration.
func LookupVendor(vendorIdentifier uint32) (*VendorInfo, bool) {
	vendorMu.Lock()
	defer vendorMu.Unlock()

	vendorFrozen = true

	if info, ok := vendorInfo[vendorIdentifier]; ok {
		return info, true
	}
	return ashraeVendorInfo, true
}

// globalVendorRegistry adapts the package-level LookupVendor to the
// VendorRegistry interface for hosts that don't maintain their own.
type globalVendorRegistry struct{}

func (globalVendorRegistry) LookupVendor(vendorIdentifier uint32) (*VendorInfo, bool) {
	return LookupVendor(vendorIdentifier)
}

// GlobalVendorRegistry is the process-wide VendorRegistry backed by
// RegisterVendor/LookupVendor above.
var GlobalVendorRegistry VendorRegistry = globalVendorRegistry{}
