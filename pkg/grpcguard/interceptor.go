// Package grpcguard intercepts unary gRPC calls and checks request and
// response messages against declared annotations.
//
// It is a thin caller of the typeguard core: one namespace is built per
// call and threaded through the request and response checks, so a type
// variable bound while checking the request constrains the response. A
// failed check never surfaces as an error from the core; this package is
// where a false turns into a gRPC status.
package grpcguard

import (
	"context"
	"fmt"
	"os"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/funvibe/typeguard/pkg/typeguard"
)

// Rule declares the annotations for one method. A nil annotation skips that
// side of the call.
type Rule struct {
	Request  any
	Response any
}

// Violation describes one failed conformance check, for recording.
type Violation struct {
	Method   string
	Kind     string // "request" or "response"
	Expected string
	Observed string
}

// Recorder receives violations, typically for an audit trail. Record must
// be safe for concurrent use; failures to record must not fail the call.
type Recorder interface {
	Record(v Violation)
}

// Interceptor holds per-method rules. Declare every rule before the server
// starts serving; the rule table is read without locks on the request path,
// matching the registry's append-mostly configuration contract.
type Interceptor struct {
	rules    map[string]Rule
	recorder Recorder
}

// Option configures an Interceptor.
type Option func(*Interceptor)

// WithRecorder attaches a violation recorder.
func WithRecorder(r Recorder) Option {
	return func(i *Interceptor) { i.recorder = r }
}

// New creates an empty interceptor.
func New(opts ...Option) *Interceptor {
	i := &Interceptor{rules: make(map[string]Rule)}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

// Declare registers annotations for a full method name (e.g.
// "/echo.Echo/Send"). Redeclaring a method replaces its rule.
func (i *Interceptor) Declare(fullMethod string, req, resp any) {
	i.rules[fullMethod] = Rule{Request: req, Response: resp}
}

// Unary returns the server interceptor. Calls on methods without a declared
// rule, and all calls while checking is disabled, pass straight through.
func (i *Interceptor) Unary() grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		if !typeguard.Enabled() {
			return handler(ctx, req)
		}
		rule, ok := i.rules[info.FullMethod]
		if !ok {
			return handler(ctx, req)
		}

		ns := typeguard.NewNamespace(nil)

		if rule.Request != nil {
			checker := typeguard.Create(rule.Request)
			if checker == nil {
				return nil, status.Error(codes.Internal,
					typeguard.NewSpecificationError("no checker for request annotation of %s", info.FullMethod).Error())
			}
			if !checker.Check(req, ns) {
				verr := typeguard.NewInputParameterError(info.FullMethod, "request",
					typeguard.Describe(rule.Request), typeguard.DescribeValue(req))
				i.record(Violation{
					Method:   info.FullMethod,
					Kind:     "request",
					Expected: verr.Expected,
					Observed: verr.Observed,
				})
				return nil, status.Error(codes.InvalidArgument, verr.Error())
			}
		}

		resp, err := handler(ctx, req)
		if err != nil {
			return resp, err
		}

		if rule.Response != nil {
			checker := typeguard.Create(rule.Response)
			if checker == nil {
				return nil, status.Error(codes.Internal,
					typeguard.NewSpecificationError("no checker for response annotation of %s", info.FullMethod).Error())
			}
			if !checker.Check(resp, ns) {
				verr := typeguard.NewReturnValueError(info.FullMethod,
					typeguard.Describe(rule.Response), typeguard.DescribeValue(resp))
				i.record(Violation{
					Method:   info.FullMethod,
					Kind:     "response",
					Expected: verr.Expected,
					Observed: verr.Observed,
				})
				return nil, status.Error(codes.Internal, verr.Error())
			}
		}

		return resp, nil
	}
}

func (i *Interceptor) record(v Violation) {
	if i.recorder == nil {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "typeguard: violation recorder panicked: %v\n", r)
		}
	}()
	i.recorder.Record(v)
}
