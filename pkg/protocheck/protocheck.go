// Package protocheck plugs protobuf message awareness into the typeguard
// registry.
//
// A proto message type is reflectively an ordinary struct pointer type, so
// without this package an annotation like reflect.TypeOf(&pb.Echo{}) would
// fall through to the plain-type checker and lose the message identity: any
// message with a compatible Go representation would pass. The package
// registers its predicate ahead of the plain-type catch-all (see the
// registry ordering contract) and validates the message full name instead,
// which also covers dynamic messages whose Go type says nothing at all.
package protocheck

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/jhump/protoreflect/desc"
	"github.com/jhump/protoreflect/desc/protoparse"
	"github.com/jhump/protoreflect/dynamic"
	"google.golang.org/protobuf/proto"

	"github.com/funvibe/typeguard/pkg/typeguard"
)

// Registry of parsed proto files, keyed by file name.
var (
	fileMu sync.RWMutex
	files  = make(map[string]*desc.FileDescriptor)
)

// LoadProtoFile parses a .proto file (plus its dependencies) and makes its
// message types available to LoadedMessage. importPaths defaults to the
// current directory.
func LoadProtoFile(path string, importPaths ...string) error {
	parser := protoparse.Parser{}
	if len(importPaths) == 0 {
		importPaths = []string{"."}
	}
	parser.ImportPaths = importPaths

	fds, err := parser.ParseFiles(path)
	if err != nil {
		return fmt.Errorf("failed to parse proto: %w", err)
	}

	fileMu.Lock()
	defer fileMu.Unlock()
	for _, fd := range fds {
		files[fd.GetName()] = fd
	}
	return nil
}

// findMessageDescriptor looks a message up across all loaded files.
func findMessageDescriptor(fullName string) *desc.MessageDescriptor {
	fileMu.RLock()
	defer fileMu.RUnlock()
	for _, fd := range files {
		if md := fd.FindMessage(fullName); md != nil {
			return md
		}
	}
	return nil
}

// MessageChecker validates that a value is a protobuf message with the
// expected fully qualified name. Works for generated and dynamic messages.
type MessageChecker struct {
	name string
}

// Message builds a checker for one message full name (e.g.
// "echo.EchoRequest"). The name is not validated against loaded files; use
// LoadedMessage for that.
func Message(fullName string) *MessageChecker {
	return &MessageChecker{name: fullName}
}

// LoadedMessage builds a checker for a message that must exist in a
// previously loaded proto file.
func LoadedMessage(fullName string) (*MessageChecker, error) {
	if findMessageDescriptor(fullName) == nil {
		return nil, fmt.Errorf("message %s not found in loaded proto files", fullName)
	}
	return Message(fullName), nil
}

func (c *MessageChecker) Check(value any, ns *typeguard.Namespace) bool {
	switch m := value.(type) {
	case *dynamic.Message:
		return m.GetMessageDescriptor().GetFullyQualifiedName() == c.name
	case proto.Message:
		return string(m.ProtoReflect().Descriptor().FullName()) == c.name
	}
	return false
}

func (c *MessageChecker) String() string { return c.name }

var protoMessageType = reflect.TypeOf((*proto.Message)(nil)).Elem()

// isMessageAnnotation recognizes message annotations in three shapes: a
// prototype message value, a protoreflect message descriptor, or a
// reflect.Type whose Go type implements proto.Message.
func isMessageAnnotation(annotation any) bool {
	switch a := annotation.(type) {
	case *dynamic.Message:
		return true
	case proto.Message:
		return true
	case *desc.MessageDescriptor:
		return true
	case reflect.Type:
		return a.Implements(protoMessageType)
	}
	return false
}

func newMessageChecker(annotation any) typeguard.Checker {
	switch a := annotation.(type) {
	case *dynamic.Message:
		return Message(a.GetMessageDescriptor().GetFullyQualifiedName())
	case proto.Message:
		return Message(string(a.ProtoReflect().Descriptor().FullName()))
	case *desc.MessageDescriptor:
		return Message(a.GetFullyQualifiedName())
	case reflect.Type:
		var prototype any
		if a.Kind() == reflect.Ptr {
			prototype = reflect.New(a.Elem()).Interface()
		} else {
			prototype = reflect.Zero(a).Interface()
		}
		m := prototype.(proto.Message)
		return Message(string(m.ProtoReflect().Descriptor().FullName()))
	}
	return nil
}

func init() {
	// Must precede the plain-type catch-all: a message type annotation
	// given as a reflect.Type would otherwise be dispatched as an ordinary
	// struct pointer and silently lose the message name check.
	typeguard.RegisterFirst(isMessageAnnotation, newMessageChecker)
}
