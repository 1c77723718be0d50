package constvars

const (
	MethodGet     = "GET"
	MethodHead    = "HEAD"
	MethodPost    = "POST"
	MethodPut     = "PUT"
	MethodPatch   = "PATCH"
	MethodDelete  = "DELETE"
	MethodConnect = "CONNECT"
	MethodOptions = "OPTIONS"
	MethodTrace   = "TRACE"
)

const (
	MIMETextXML         = "text/xml"
	MIMETextHTML        = "text/html"
	MIMETextPlain       = "text/plain"
	MIMEApplicationXML  = "application/xml"
	MIMEApplicationJSON = "application/json"

	MIMEApplicationForm = "application/x-www-form-urlencoded"
	MIMEOctetStream     = "application/octet-stream"
	MIMEMultipartForm   = "multipart/form-data"

	MIMEImageJPEG  = "image/jpeg"
	MIMEImagePNG   = "image/png"
	MIMEImageDICOM = "application/dicom"

	MIMETextPlainCharsetUTF8       = "text/plain; charset=utf-8"
	MIMEApplicationJSONCharsetUTF8 = "application/json; charset=utf-8"
)

const (
	StatusContinue           = 100
	StatusSwitchingProtocols = 101
	StatusProcessing         = 102
	StatusEarlyHints         = 103

	StatusOK                          = 200
	StatusCreated                     = 201
	StatusAccepted                    = 202
	StatusNonAuthoritativeInformation = 203
	StatusNoContent                   = 204
	StatusResetContent                = 205
	StatusPartialContent              = 206

	StatusMultipleChoices   = 300
	StatusMovedPermanently  = 301
	StatusFound             = 302
	StatusSeeOther          = 303
	StatusNotModified       = 304
	StatusTemporaryRedirect = 307
	StatusPermanentRedirect = 308

	StatusBadRequest                   = 400
	StatusUnauthorized                 = 401
	StatusPaymentRequired              = 402
	StatusForbidden                    = 403
	StatusNotFound                     = 404
	StatusMethodNotAllowed             = 405
	StatusNotAcceptable                = 406
	StatusProxyAuthRequired            = 407
	StatusRequestTimeout               = 408
	StatusConflict                     = 409
	StatusGone                         = 410
	StatusLengthRequired               = 411
	StatusPreconditionFailed           = 412
	StatusRequestEntityTooLarge        = 413
	StatusRequestURITooLong            = 414
	StatusUnsupportedMediaType         = 415
	StatusRequestedRangeNotSatisfiable = 416
	StatusExpectationFailed            = 417
	StatusTeapot                       = 418
	StatusMisdirectedRequest           = 421
	StatusUnprocessableEntity          = 422
	StatusLocked                       = 423
	StatusFailedDependency             = 424
	StatusTooEarly                     = 425
	StatusUpgradeRequired              = 426
	StatusPreconditionRequired         = 428
	StatusTooManyRequests              = 429
	StatusRequestHeaderFieldsTooLarge  = 431
	StatusUnavailableForLegalReasons   = 451

	StatusInternalServerError           = 500
	StatusNotImplemented                = 501
	StatusBadGateway                    = 502
	StatusServiceUnavailable            = 503
	StatusGatewayTimeout                = 504
	StatusHTTPVersionNotSupported       = 505
	StatusVariantAlsoNegotiates         = 506
	StatusInsufficientStorage           = 507
	StatusLoopDetected                  = 508
	StatusNotExtended                   = 510
	StatusNetworkAuthenticationRequired = 511
)

const (
	HeaderAuthorization       = "Authorization"
	HeaderWWWAuthenticate     = "WWW-Authenticate"
	HeaderCacheControl        = "Cache-Control"
	HeaderExpires             = "Expires"
	HeaderPragma              = "Pragma"
	HeaderAccept              = "Accept"
	HeaderAcceptCharset       = "Accept-Charset"
	HeaderAcceptEncoding      = "Accept-Encoding"
	HeaderAcceptLanguage      = "Accept-Language"
	HeaderCookie              = "Cookie"
	HeaderSetCookie           = "Set-Cookie"
	HeaderOrigin              = "Origin"
	HeaderContentDisposition  = "Content-Disposition"
	HeaderContentEncoding     = "Content-Encoding"
	HeaderContentLanguage     = "Content-Language"
	HeaderContentLength       = "Content-Length"
	HeaderContentLocation     = "Content-Location"
	HeaderContentType         = "Content-Type"
	HeaderForwarded           = "Forwarded"
	HeaderVia                 = "Via"
	HeaderXForwardedFor       = "X-Forwarded-For"
	HeaderXForwardedHost      = "X-Forwarded-Host"
	HeaderXForwardedProto     = "X-Forwarded-Proto"
	HeaderLocation            = "Location"
	HeaderHost                = "Host"
	HeaderReferer             = "Referer"
	HeaderUserAgent           = "User-Agent"
	HeaderAllow               = "Allow"
	HeaderServer              = "Server"
	HeaderAcceptRanges        = "Accept-Ranges"
	HeaderContentRange        = "Content-Range"
	HeaderRange               = "Range"
	HeaderRetryAfter          = "Retry-After"
	HeaderLink                = "Link"
	HeaderDate                = "Date"
	HeaderETag                = "ETag"
	HeaderLastModified        = "Last-Modified"
	HeaderVary                = "Vary"
	HeaderConnection          = "Connection"
	HeaderKeepAlive           = "Keep-Alive"
	HeaderTransferEncoding    = "Transfer-Encoding"
	HeaderUpgrade             = "Upgrade"
	HeaderXRequestID          = "X-Request-ID"
	HeaderXRequestedWith      = "X-Requested-With"
	HeaderXContentTypeOptions = "X-Content-Type-Options"
	HeaderXFrameOptions       = "X-Frame-Options"
	HeaderXCSRFToken          = "X-CSRF-Token"
)
