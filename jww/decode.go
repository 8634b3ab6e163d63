package jww

import "fmt"

// maxEntityReservation caps the up-front allocation for the entity slice.
// The on-disk count is a WORD, so it can never actually exceed 0xFFFF, but
// the cap is kept as a defensive ceiling against any future widening of the
// count field and to keep the reservation policy explicit.
const maxEntityReservation = 1 << 20

// classTable implements class-identifier interning: small integer pids
// assigned sequentially to class-definition records, resolved back to a
// class name on later back-references. It only grows for the lifetime of a
// single decode; the drawing format never redefines a pid's meaning.
type classTable struct {
	names   map[uint32]string
	nextPID uint32
}

func newClassTable() *classTable {
	return &classTable{names: make(map[uint32]string), nextPID: 1}
}

func (t *classTable) bind(name string) {
	t.names[t.nextPID] = name
	t.nextPID++
}

func (t *classTable) lookup(pid uint32) (string, bool) {
	name, ok := t.names[pid]
	return name, ok
}

// decodeEntityStream reads the entity-list count and then drives the
// class-interning state machine for exactly that many records. Null
// objects and dimension skips contribute no entity but still occupy a pid
// slot, so the returned slice can be shorter than the decoded count.
func decodeEntityStream(r *Reader, version uint32) ([]Entity, error) {
	count, err := r.ReadWORD()
	if err != nil {
		return nil, fmt.Errorf("reading entity count: %w", err)
	}

	reserve := int(count)
	if reserve > maxEntityReservation {
		reserve = maxEntityReservation
	}
	entities := make([]Entity, 0, reserve)

	table := newClassTable()

	for i := uint16(0); i < count; i++ {
		entity, err := decodeEntityRecord(r, version, table)
		if err != nil {
			return nil, fmt.Errorf("decoding entity record %d/%d: %w", i+1, count, err)
		}
		if entity != nil {
			entities = append(entities, entity)
		}
	}

	return entities, nil
}

// decodeEntityRecord decodes one record from the entity stream: a class
// definition, a null-object marker, or a back-reference, then dispatches to
// the named class's decoder. Every successful record — whether or not it
// produced an entity — consumes exactly one pid slot, including a null
// object; treating a null object as a non-consuming no-op would shift pid
// numbering for every back-reference that follows it. A class-definition
// record additionally binds its own pid when introducing the class name,
// so that path advances the pid counter twice: once for the binding, once
// for the record itself.
func decodeEntityRecord(r *Reader, version uint32, table *classTable) (Entity, error) {
	classID, err := r.ReadWORD()
	if err != nil {
		return nil, err
	}

	switch classID {
	case 0xFFFF:
		schema, err := r.ReadWORD()
		if err != nil {
			return nil, fmt.Errorf("reading class schema: %w", err)
		}
		_ = schema

		nameLen, err := r.ReadWORD()
		if err != nil {
			return nil, fmt.Errorf("reading class name length: %w", err)
		}
		nameBuf, err := r.ReadExact(int(nameLen))
		if err != nil {
			return nil, fmt.Errorf("reading class name: %w", err)
		}
		className := string(nameBuf)
		table.bind(className)

		entity, err := dispatchEntity(r, version, className)
		if err != nil {
			return nil, err
		}
		table.nextPID++
		return entity, nil

	case 0x8000:
		table.nextPID++
		return nil, nil

	default:
		pid := uint32(classID & 0x7FFF)
		className, ok := table.lookup(pid)
		if !ok {
			return nil, fmt.Errorf("%w: %d", ErrUnknownClassPID, pid)
		}
		entity, err := dispatchEntity(r, version, className)
		if err != nil {
			return nil, err
		}
		table.nextPID++
		return entity, nil
	}
}

// dispatchEntity decodes the body of a known class. This is the sealed
// dispatch set: the drawing format only ever serializes these seven class
// names within the entity stream, so an unknown name is terminal — the
// stream is not self-synchronizing and there is nothing to resync against.
func dispatchEntity(r *Reader, version uint32, className string) (Entity, error) {
	switch className {
	case "CDataSen":
		return decodeLine(r, version)
	case "CDataEnko":
		return decodeArc(r, version)
	case "CDataTen":
		return decodePoint(r, version)
	case "CDataMoji":
		return decodeText(r, version)
	case "CDataSolid":
		return decodeSolid(r, version)
	case "CDataBlock":
		return decodeBlock(r, version)
	case "CDataSunpou":
		return nil, decodeDimension(r, version)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownEntityClass, className)
	}
}
