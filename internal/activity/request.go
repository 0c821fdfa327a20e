package activity

import (
	"context"

	"github.com/yonasBSD/klickbee-crm-sub001/pkg/ctxutil"
)

// Metadata keys filled from the request context.
const (
	MetadataRequestID = "request_id"
	MetadataClientIP  = "ip_address"
)

// RequestMetadata returns the request attributes carried by ctx, merged with
// extra. It returns nil when there is nothing to record.
func RequestMetadata(ctx context.Context, extra map[string]any) map[string]any {
	var md map[string]any
	set := func(k string, v any) {
		if md == nil {
			md = make(map[string]any, len(extra)+2)
		}
		md[k] = v
	}

	if id := ctxutil.RequestIDFromCtx(ctx); id != "" {
		set(MetadataRequestID, id)
	}
	if ip := ctxutil.ClientIPFromCtx(ctx); ip != "" {
		set(MetadataClientIP, ip)
	}
	for k, v := range extra {
		set(k, v)
	}
	return md
}
