package protocheck

import (
	"reflect"
	"testing"

	"github.com/jhump/protoreflect/dynamic"
	"google.golang.org/protobuf/types/descriptorpb"

	"github.com/funvibe/typeguard/pkg/typeguard"
)

func TestMessageCheckerGeneratedMessage(t *testing.T) {
	c := Message("google.protobuf.FileDescriptorProto")
	ns := typeguard.NewNamespace(nil)

	if !c.Check(&descriptorpb.FileDescriptorProto{}, ns) {
		t.Errorf("matching generated message rejected")
	}
	if c.Check(&descriptorpb.DescriptorProto{}, ns) {
		t.Errorf("message with a different full name accepted")
	}
	if c.Check("not a message", ns) {
		t.Errorf("non-message value accepted")
	}
}

func TestRegistryDispatchesMessageAnnotations(t *testing.T) {
	ns := typeguard.NewNamespace(nil)

	t.Run("prototype value", func(t *testing.T) {
		c := typeguard.Create(&descriptorpb.FileDescriptorProto{})
		if _, ok := c.(*MessageChecker); !ok {
			t.Fatalf("Create(prototype) = %T, want *MessageChecker", c)
		}
		if !c.Check(&descriptorpb.FileDescriptorProto{}, ns) {
			t.Errorf("prototype-derived checker rejected matching message")
		}
	})

	t.Run("reflect.Type of a message", func(t *testing.T) {
		// The ordering contract at work: this annotation is also a plain
		// struct pointer type, but it must dispatch to the message checker,
		// not the plain-type catch-all.
		c := typeguard.Create(reflect.TypeOf(&descriptorpb.FileDescriptorProto{}))
		if _, ok := c.(*MessageChecker); !ok {
			t.Fatalf("Create(reflect.Type) = %T, want *MessageChecker", c)
		}
		if c.Check(&descriptorpb.DescriptorProto{}, ns) {
			t.Errorf("wrong message type accepted")
		}
	})
}

func TestLoadProtoFileAndDynamicMessages(t *testing.T) {
	if err := LoadProtoFile("echo.proto", "testdata"); err != nil {
		t.Fatalf("LoadProtoFile: %v", err)
	}

	c, err := LoadedMessage("echo.EchoRequest")
	if err != nil {
		t.Fatalf("LoadedMessage: %v", err)
	}

	md := findMessageDescriptor("echo.EchoRequest")
	if md == nil {
		t.Fatalf("echo.EchoRequest not found after load")
	}

	ns := typeguard.NewNamespace(nil)
	if !c.Check(dynamic.NewMessage(md), ns) {
		t.Errorf("dynamic message with matching descriptor rejected")
	}

	respMd := findMessageDescriptor("echo.EchoResponse")
	if respMd == nil {
		t.Fatalf("echo.EchoResponse not found after load")
	}
	if c.Check(dynamic.NewMessage(respMd), ns) {
		t.Errorf("dynamic message with different descriptor accepted")
	}
}

func TestLoadedMessageUnknownName(t *testing.T) {
	if _, err := LoadedMessage("echo.NoSuchMessage"); err == nil {
		t.Errorf("LoadedMessage for an unknown name should fail")
	}
}
