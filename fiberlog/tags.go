package fiberlog

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

const (
	TagPid       = "pid"
	TagIP        = "ip"
	TagMethod    = "method"
	TagPath      = "path"
	TagStatus    = "status"
	TagLatency   = "latency"
	TagRequestID = "request_id"
	TagBytesSent = "bytes_sent"
)

// FuncTag значение поля лога для запроса
type FuncTag func(c *fiber.Ctx, d *data) interface{}

type data struct {
	pid   int
	start time.Time
	end   time.Time
}

func getFuncTagMap(cfg Config, d *data) map[string]FuncTag {
	all := map[string]FuncTag{
		TagPid: func(c *fiber.Ctx, d *data) interface{} {
			return d.pid
		},
		TagIP: func(c *fiber.Ctx, d *data) interface{} {
			return c.IP()
		},
		TagMethod: func(c *fiber.Ctx, d *data) interface{} {
			return c.Method()
		},
		TagPath: func(c *fiber.Ctx, d *data) interface{} {
			return c.Path()
		},
		TagStatus: func(c *fiber.Ctx, d *data) interface{} {
			return c.Response().StatusCode()
		},
		TagLatency: func(c *fiber.Ctx, d *data) interface{} {
			return d.end.Sub(d.start).String()
		},
		TagRequestID: func(c *fiber.Ctx, d *data) interface{} {
			id, _ := c.Locals("requestid").(string)
			return id
		},
		TagBytesSent: func(c *fiber.Ctx, d *data) interface{} {
			return len(c.Response().Body())
		},
	}
	ftm := make(map[string]FuncTag, len(cfg.Tags))
	for _, tag := range cfg.Tags {
		if ft, ok := all[tag]; ok {
			ftm[tag] = ft
		}
	}
	return ftm
}
