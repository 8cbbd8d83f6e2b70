package mux

import (
	"strconv"
	"strings"
)

// Cors is a builder-configured policy for injecting Access-Control-*
// headers into outgoing responses. A policy without an allow-origin is
// inert: Merge leaves the response untouched.
//
//	cors := mux.NewCors().
//		AnyOrigin().
//		AllowHeaders("Content-Type", "Authorization").
//		MaxAge(3600)
type Cors struct {
	allowOrigin      string
	anyOrigin        bool
	originSet        bool
	allowMethods     []Method
	allowHeaders     []string
	exposeHeaders    []string
	allowCredentials bool
	maxAge           *int
	varyOrigin       bool
}

// NewCors returns an empty policy.
func NewCors() *Cors {
	return &Cors{}
}

// AllowOrigin allows a single literal origin.
func (c *Cors) AllowOrigin(origin string) *Cors {
	c.allowOrigin = origin
	c.anyOrigin = false
	c.originSet = true
	return c
}

// AnyOrigin allows every origin ("*").
func (c *Cors) AnyOrigin() *Cors {
	c.anyOrigin = true
	c.originSet = true
	return c
}

// Credentials controls the Access-Control-Allow-Credentials header.
func (c *Cors) Credentials(value bool) *Cors {
	c.allowCredentials = value
	return c
}

// AllowMethods sets the advertised methods.
func (c *Cors) AllowMethods(methods ...Method) *Cors {
	c.allowMethods = methods
	return c
}

// AllowHeaders sets the headers a client may send.
func (c *Cors) AllowHeaders(headers ...string) *Cors {
	c.allowHeaders = headers
	return c
}

// ExposeHeaders sets the headers a browser may expose to client code.
func (c *Cors) ExposeHeaders(headers ...string) *Cors {
	c.exposeHeaders = headers
	return c
}

// MaxAge sets how long, in seconds, a pre-flight result may be cached.
func (c *Cors) MaxAge(seconds int) *Cors {
	c.maxAge = &seconds
	return c
}

// VaryOrigin controls whether Merge adds "Vary: Origin".
func (c *Cors) VaryOrigin(value bool) *Cors {
	c.varyOrigin = value
	return c
}

// Merge writes the policy's headers onto the response, overwriting any
// same-named header already present. Headers are set independently and
// in a fixed order: origin, credentials, expose-headers, allow-headers,
// allow-methods, max-age, Vary. Without an allow-origin the policy is a
// no-op.
func (c *Cors) Merge(res *Response) {
	if !c.originSet {
		return
	}

	origin := c.allowOrigin
	if c.anyOrigin {
		origin = "*"
	}
	res.SetHeader("Access-Control-Allow-Origin", origin)

	if c.allowCredentials {
		res.SetHeader("Access-Control-Allow-Credentials", "true")
	}

	if len(c.exposeHeaders) > 0 {
		res.SetHeader("Access-Control-Expose-Headers", strings.Join(c.exposeHeaders, ", "))
	}

	if len(c.allowHeaders) > 0 {
		res.SetHeader("Access-Control-Allow-Headers", strings.Join(c.allowHeaders, ", "))
	}

	if len(c.allowMethods) > 0 {
		names := make([]string, len(c.allowMethods))
		for i, m := range c.allowMethods {
			names[i] = m.String()
		}
		res.SetHeader("Access-Control-Allow-Methods", strings.Join(names, ", "))
	}

	if c.maxAge != nil {
		res.SetHeader("Access-Control-Max-Age", strconv.Itoa(*c.maxAge))
	}

	if c.varyOrigin {
		res.SetHeader("Vary", "Origin")
	}
}
