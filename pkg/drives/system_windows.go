//go:build windows

package drives

import (
	"context"
	"strings"
	"unsafe"

	"github.com/BenjaminKobjolke/FMANGoConemu/pkg/errors"
	"github.com/rs/zerolog"
	"golang.org/x/sys/windows"
	"golang.org/x/sys/windows/registry"
)

var (
	mpr                 = windows.NewLazySystemDLL("mpr.dll")
	wNetOpenEnum        = mpr.NewProc("WNetOpenEnumW")
	wNetEnumResource    = mpr.NewProc("WNetEnumResourceW")
	wNetCloseEnum       = mpr.NewProc("WNetCloseEnum")
	wNetAddConnection2W = mpr.NewProc("WNetAddConnection2W")
)

// Constants for WNetOpenEnum and WNetAddConnection2
const (
	resourceConnected    = 0x00000001
	resourceTypeDisk     = 0x00000001
	connectUpdateProfile = 0x00000001
	errorNoMoreItems     = 259
	enumBufferSize       = 16384
)

// net use keeps its /persistent choice here; a missing value means yes
const (
	persistentConnectionsKey = `Software\Microsoft\Windows NT\CurrentVersion\Network\Persistent Connections`
	saveConnectionsValue     = "SaveConnections"
)

// rememberedPersistence reads the user's saved net use /persistent setting
func rememberedPersistence() bool {
	key, err := registry.OpenKey(registry.CURRENT_USER, persistentConnectionsKey, registry.QUERY_VALUE)
	if err != nil {
		return true
	}
	defer key.Close()

	value, _, err := key.GetStringValue(saveConnectionsValue)
	if err != nil {
		return true
	}
	return !strings.EqualFold(value, "no")
}

type netResource struct {
	dwScope       uint32
	dwType        uint32
	dwDisplayType uint32
	dwUsage       uint32
	lpLocalName   *uint16
	lpRemoteName  *uint16
	lpComment     *uint16
	lpProvider    *uint16
}

type systemMask struct{}

// NewSystemMask returns the GetLogicalDrives backed MaskSource
func NewSystemMask() MaskSource {
	return systemMask{}
}

func (systemMask) UsedLetters() (LetterSet, error) {
	mask, err := windows.GetLogicalDrives()
	if err != nil {
		return 0, errors.Wrap(err, errors.ErrDriveQuery, "GetLogicalDrives failed")
	}
	return LetterSet(mask), nil
}

// WNetLister enumerates connected disk resources through mpr.dll
type WNetLister struct {
	Logger zerolog.Logger
}

// NewWNetLister creates the mpr.dll backed Lister
func NewWNetLister(logger zerolog.Logger) Lister {
	return &WNetLister{Logger: logger}
}

// ListMappings returns every connected resource that has a local drive letter
func (l *WNetLister) ListMappings(ctx context.Context) ([]Mapping, error) {
	if err := mpr.Load(); err != nil {
		return nil, errors.Wrap(err, errors.ErrMappingQuery, "mpr.dll unavailable")
	}

	var handle windows.Handle
	ret, _, _ := wNetOpenEnum.Call(
		uintptr(resourceConnected),
		uintptr(resourceTypeDisk),
		0,
		0,
		uintptr(unsafe.Pointer(&handle)),
	)
	if ret != 0 {
		return nil, errors.Newf(errors.ErrMappingQuery, "WNetOpenEnum failed with error code %d", ret)
	}
	defer wNetCloseEnum.Call(uintptr(handle))

	buffer := make([]byte, enumBufferSize)
	var mappings []Mapping

	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		count := ^uint32(0)
		size := uint32(len(buffer))
		ret, _, _ = wNetEnumResource.Call(
			uintptr(handle),
			uintptr(unsafe.Pointer(&count)),
			uintptr(unsafe.Pointer(&buffer[0])),
			uintptr(unsafe.Pointer(&size)),
		)
		if ret == errorNoMoreItems {
			break
		}
		if ret != 0 {
			return nil, errors.Newf(errors.ErrMappingQuery, "WNetEnumResource failed with error code %d", ret)
		}

		resources := unsafe.Slice((*netResource)(unsafe.Pointer(&buffer[0])), count)
		for _, res := range resources {
			if res.lpLocalName == nil || res.lpRemoteName == nil {
				continue
			}
			letter, ok := ParseLetter(windows.UTF16PtrToString(res.lpLocalName))
			if !ok {
				continue
			}
			mappings = append(mappings, Mapping{
				Letter: letter,
				Target: windows.UTF16PtrToString(res.lpRemoteName),
			})
		}
	}

	l.Logger.Debug().Int("count", len(mappings)).Msg("Enumerated drive mappings")
	return mappings, nil
}

// WNetCreator creates mappings with WNetAddConnection2W
type WNetCreator struct {
	Persistence Persistence
	Logger      zerolog.Logger
}

// NewWNetCreator creates the mpr.dll backed Creator
func NewWNetCreator(persistence Persistence, logger zerolog.Logger) Creator {
	return &WNetCreator{Persistence: persistence, Logger: logger}
}

// CreateMapping returns the Win32 error code of WNetAddConnection2W
func (c *WNetCreator) CreateMapping(_ context.Context, letter Letter, serverShare string) (int, error) {
	if err := mpr.Load(); err != nil {
		return -1, errors.Wrap(err, errors.ErrMappingCreate, "mpr.dll unavailable")
	}

	local, err := windows.UTF16PtrFromString(string(letter))
	if err != nil {
		return -1, errors.Wrap(err, errors.ErrMappingCreate, "invalid drive letter")
	}
	remote, err := windows.UTF16PtrFromString(serverShare)
	if err != nil {
		return -1, errors.Wrap(err, errors.ErrMappingCreate, "invalid share name")
	}

	var flags uint32
	if c.Persistence.UpdateProfile(rememberedPersistence()) {
		flags = connectUpdateProfile
	}

	res := netResource{
		dwType:       resourceTypeDisk,
		lpLocalName:  local,
		lpRemoteName: remote,
	}

	c.Logger.Info().
		Str("letter", string(letter)).
		Str("serverShare", serverShare).
		Uint32("flags", flags).
		Msg("Creating new network mapping")

	ret, _, _ := wNetAddConnection2W.Call(
		uintptr(unsafe.Pointer(&res)),
		0,
		0,
		uintptr(flags),
	)

	c.Logger.Info().Uint64("result", uint64(ret)).Msg("Result of WNetAddConnection2")
	return int(ret), nil
}
