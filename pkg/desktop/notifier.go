// Package desktop mirrors toasts to the org.freedesktop.Notifications
// service, so messages shown inside the terminal also reach the desktop
// notification daemon when one is running.
package desktop

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/godbus/dbus/v5"

	"github.com/crouton-dev/crouton/pkg/toast"
)

const (
	notifyInterface = "org.freedesktop.Notifications"
	notifyPath      = "/org/freedesktop/Notifications"
	notifyBusName   = "org.freedesktop.Notifications"
)

// Urgency represents notification priority levels per the freedesktop spec.
type Urgency byte

const (
	UrgencyLow      Urgency = 0
	UrgencyNormal   Urgency = 1
	UrgencyCritical Urgency = 2
)

// String returns the string representation of the urgency.
func (u Urgency) String() string {
	switch u {
	case UrgencyLow:
		return "low"
	case UrgencyNormal:
		return "normal"
	case UrgencyCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// UrgencyFor maps a toast level to a freedesktop urgency.
func UrgencyFor(level toast.Level) Urgency {
	switch level {
	case toast.LevelError:
		return UrgencyCritical
	case toast.LevelWarning:
		return UrgencyNormal
	default:
		return UrgencyLow
	}
}

// Notification contains data for a desktop notification.
type Notification struct {
	Title      string  // Summary text (required)
	Body       string  // Body text (optional, supports basic markup)
	Icon       string  // Path to image file or icon name (optional)
	Timeout    int32   // ms, -1 = server default, 0 = never expire
	ReplacesID uint32  // 0 = new notification, >0 = replace existing
	Urgency    Urgency // Low, Normal, Critical
}

// FromToast builds a Notification mirroring a toast. The toast's icon is a
// terminal glyph, not a freedesktop icon name, so it is folded into the
// summary rather than passed through as Icon.
func FromToast(t *toast.Toast) Notification {
	n := Notification{
		Title:   t.Title(),
		Body:    t.Message(),
		Urgency: UrgencyFor(t.Level()),
	}
	if n.Title == "" {
		n.Title, n.Body = n.Body, ""
	}
	if n.Title == "" {
		n.Title = t.Level().String()
	}
	if icon := t.Icon(); icon != "" {
		n.Title = icon + " " + n.Title
	}
	switch d := t.Duration(); {
	case d < 0:
		n.Timeout = 0 // never expire
	case d > 0:
		n.Timeout = int32(d / time.Millisecond)
	default:
		n.Timeout = -1 // server default
	}
	return n
}

// Notifier sends desktop notifications.
type Notifier interface {
	// Notify sends a notification and returns its ID.
	// Returns 0 and nil error if notifications are disabled or unavailable.
	Notify(n Notification) (uint32, error)
	// Close closes a notification by ID.
	Close(id uint32) error
}

// Disabled is a Notifier that drops every notification.
type Disabled struct{}

// Notify implements Notifier.
func (Disabled) Notify(Notification) (uint32, error) { return 0, nil }

// Close implements Notifier.
func (Disabled) Close(uint32) error { return nil }

// DBusNotifier delivers notifications to the session notification service.
// The connection is established lazily on first use; if no session bus is
// reachable the notifier disables itself instead of failing every call.
type DBusNotifier struct {
	logger  *slog.Logger
	appName string

	mu      sync.Mutex
	conn    *dbus.Conn
	obj     dbus.BusObject
	enabled bool
}

// NewDBusNotifier creates a notifier for the session bus. appName is
// reported to the notification daemon as the sending application.
func NewDBusNotifier(appName string, logger *slog.Logger) *DBusNotifier {
	if logger == nil {
		logger = slog.Default()
	}
	return &DBusNotifier{
		logger:  logger,
		appName: appName,
		enabled: true,
	}
}

// SetEnabled enables or disables delivery. Re-enabling after a failed
// connection attempt retries the session bus.
func (d *DBusNotifier) SetEnabled(enabled bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.enabled = enabled
}

// Enabled reports whether delivery is enabled.
func (d *DBusNotifier) Enabled() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.enabled
}

// connect returns the notification service object, dialing the session bus
// on first use. Callers must hold d.mu.
func (d *DBusNotifier) connect() (dbus.BusObject, error) {
	if d.obj != nil {
		return d.obj, nil
	}
	conn, err := dbus.SessionBus()
	if err != nil {
		return nil, fmt.Errorf("failed to connect to session bus: %w", err)
	}
	d.conn = conn
	d.obj = conn.Object(notifyBusName, notifyPath)
	return d.obj, nil
}

// Notify sends the notification and returns the ID assigned by the
// notification daemon. When delivery is disabled, or no session bus is
// available, it returns 0 and a nil error.
func (d *DBusNotifier) Notify(n Notification) (uint32, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if !d.enabled {
		return 0, nil
	}

	obj, err := d.connect()
	if err != nil {
		// No session bus. Disable so every toast does not re-dial.
		d.enabled = false
		d.logger.Warn("desktop notifications unavailable", "error", err)
		return 0, nil
	}

	hints := map[string]dbus.Variant{
		"urgency": dbus.MakeVariant(byte(n.Urgency)),
	}

	// Notify(app_name, replaces_id, app_icon, summary, body, actions, hints, expire_timeout)
	call := obj.Call(notifyInterface+".Notify", 0,
		d.appName, n.ReplacesID, n.Icon, n.Title, n.Body,
		[]string{}, hints, n.Timeout)
	if call.Err != nil {
		return 0, fmt.Errorf("failed to send notification: %w", call.Err)
	}

	var id uint32
	if err := call.Store(&id); err != nil {
		return 0, fmt.Errorf("failed to read notification id: %w", err)
	}

	d.logger.Debug("sent desktop notification", "id", id, "summary", n.Title)
	return id, nil
}

// Close closes a previously sent notification. Closing ID 0 or closing
// before anything was sent is a no-op.
func (d *DBusNotifier) Close(id uint32) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if id == 0 || d.obj == nil {
		return nil
	}
	call := d.obj.Call(notifyInterface+".CloseNotification", 0, id)
	if call.Err != nil {
		return fmt.Errorf("failed to close notification: %w", call.Err)
	}
	return nil
}

// Stop closes the bus connection.
func (d *DBusNotifier) Stop() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.conn == nil {
		return nil
	}
	err := d.conn.Close()
	d.conn = nil
	d.obj = nil
	return err
}
