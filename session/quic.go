package session

import (
	"context"
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/tls"
	"crypto/x509"
	"crypto/x509/pkix"
	"math/big"
	"net"
	"time"

	"github.com/oomph-ac/wallrun/oerror"
	"github.com/quic-go/quic-go"
)

// quicProtocol is the ALPN protocol negotiated by QUIC sessions.
const quicProtocol = "wallrun-v0"

var quicConfig = &quic.Config{
	KeepAlivePeriod: time.Second,
	MaxIdleTimeout:  time.Minute,
}

// QUICListener accepts QUIC connections that each carry the packets of a single session on one
// bidirectional stream.
type QUICListener struct {
	ln *quic.Listener
}

// ListenQUIC listens for QUIC sessions on addr.
func ListenQUIC(addr string, tlsConf *tls.Config) (*QUICListener, error) {
	ln, err := quic.ListenAddr(addr, withProtocol(tlsConf), quicConfig)
	if err != nil {
		return nil, oerror.New("unable to listen on %s: %v", addr, err)
	}
	return &QUICListener{ln: ln}, nil
}

// Accept waits for the next session and returns its packet connection.
func (l *QUICListener) Accept(ctx context.Context) (*StreamConn, net.Addr, error) {
	conn, err := l.ln.Accept(ctx)
	if err != nil {
		return nil, nil, err
	}
	stream, err := conn.AcceptStream(ctx)
	if err != nil {
		_ = conn.CloseWithError(0, "no stream opened")
		return nil, nil, err
	}
	return newStreamConn(stream, func() error {
		return conn.CloseWithError(0, "session closed")
	}), conn.RemoteAddr(), nil
}

// Addr ...
func (l *QUICListener) Addr() net.Addr {
	return l.ln.Addr()
}

// Close ...
func (l *QUICListener) Close() error {
	return l.ln.Close()
}

// DialQUIC connects to a QUIC session listener and opens the session's stream.
func DialQUIC(ctx context.Context, addr string, tlsConf *tls.Config) (*StreamConn, error) {
	conn, err := quic.DialAddr(ctx, addr, withProtocol(tlsConf), quicConfig)
	if err != nil {
		return nil, oerror.New("unable to dial %s: %v", addr, err)
	}
	stream, err := conn.OpenStreamSync(ctx)
	if err != nil {
		_ = conn.CloseWithError(0, "unable to open stream")
		return nil, oerror.New("unable to open stream to %s: %v", addr, err)
	}
	return newStreamConn(stream, func() error {
		return conn.CloseWithError(0, "session closed")
	}), nil
}

// SelfSignedTLSConfig returns a server TLS configuration with a freshly generated self-signed
// certificate for host. Clients of such a server have to skip certificate verification.
func SelfSignedTLSConfig(host string) (*tls.Config, error) {
	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	if err != nil {
		return nil, err
	}
	template := &x509.Certificate{
		SerialNumber: big.NewInt(time.Now().UnixNano()),
		Subject:      pkix.Name{CommonName: host},
		DNSNames:     []string{host},
		NotBefore:    time.Now().Add(-time.Hour),
		NotAfter:     time.Now().Add(24 * time.Hour),
		KeyUsage:     x509.KeyUsageDigitalSignature,
		ExtKeyUsage:  []x509.ExtKeyUsage{x509.ExtKeyUsageServerAuth},
	}
	if ip := net.ParseIP(host); ip != nil {
		template.IPAddresses = []net.IP{ip}
	}
	der, err := x509.CreateCertificate(rand.Reader, template, template, &key.PublicKey, key)
	if err != nil {
		return nil, err
	}
	return &tls.Config{
		Certificates: []tls.Certificate{{Certificate: [][]byte{der}, PrivateKey: key}},
	}, nil
}

func withProtocol(tlsConf *tls.Config) *tls.Config {
	conf := tlsConf.Clone()
	conf.NextProtos = []string{quicProtocol}
	return conf
}
