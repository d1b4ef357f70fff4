package g2product

import (
	"context"

	"github.com/wippyai/g2-bridge/abi"
	"github.com/wippyai/g2-bridge/client"
	"github.com/wippyai/g2-bridge/forward"
	"github.com/wippyai/g2-bridge/response"
)

// Product is the client for the engine's product component.
type Product struct {
	base client.Base
}

// New creates a product client over fw.
func New(fw *forward.Forwarder, opts ...client.Option) *Product {
	return &Product{base: client.NewBase(fw, abi.ComponentProduct, opts...)}
}

// GetLastException returns the component's last exception message.
func (p *Product) GetLastException(ctx context.Context) (string, error) {
	return p.base.GetLastException(ctx)
}

// GetLastExceptionCode returns the component's last exception code.
func (p *Product) GetLastExceptionCode(ctx context.Context) (int, error) {
	return p.base.GetLastExceptionCode(ctx)
}

// ClearLastException resets the component's last exception.
func (p *Product) ClearLastException(ctx context.Context) error {
	return p.base.ClearLastException(ctx)
}

// SetLogLevel changes the level of the product client's logger.
func (p *Product) SetLogLevel(ctx context.Context, level string) error {
	return p.base.SetLogLevel(ctx, level)
}

// License returns the license document. The string is owned by the engine
// and copied.
func (p *Product) License(ctx context.Context) (_ string, err error) {
	defer p.base.Trace("License")(&err)
	return p.base.Forwarder().Text(ctx, abi.G2ProductLicense)
}

// Version returns the engine version document.
func (p *Product) Version(ctx context.Context) (_ string, err error) {
	defer p.base.Trace("Version")(&err)
	return p.base.Forwarder().Text(ctx, abi.G2ProductVersion)
}

// ValidateLicenseFile checks the license file at licenseFilePath and returns
// the engine's error text, if any.
func (p *Product) ValidateLicenseFile(ctx context.Context, licenseFilePath string) (_ string, err error) {
	defer p.base.Trace("ValidateLicenseFile")(&err)
	res, err := p.base.Struct(ctx, abi.G2ProductValidateLicenseFile, licenseFilePath)
	return res.Response, err
}

// ValidateLicenseStringBase64 checks a base64 encoded license and returns the
// engine's error text, if any.
func (p *Product) ValidateLicenseStringBase64(ctx context.Context, licenseString string) (_ string, err error) {
	defer p.base.Trace("ValidateLicenseStringBase64")(&err)
	res, err := p.base.Struct(ctx, abi.G2ProductValidateLicenseStringBase64, licenseString)
	return res.Response, err
}

// VersionInfo returns the product version decoded.
func (p *Product) VersionInfo(ctx context.Context) (*response.Version, error) {
	doc, err := p.Version(ctx)
	if err != nil {
		return nil, err
	}
	return response.DecodeVersion(doc)
}
